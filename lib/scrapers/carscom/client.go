// Package carscom scrapes cars.com search result pages.
package carscom

import (
	"net/url"
	"strconv"
	"time"

	"carhunt/lib/catalog"
	"carhunt/lib/listing"
	"carhunt/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const baseUrl = "https://www.cars.com/for-sale/searchresults.action/"

type Client struct {
	http *resty.Client
}

func NewClient() Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	return Client{http: client}
}

// SetInstrumentOutput dumps every request/response pair to the given
// output, pass nil to disable.
func (c Client) SetInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.http, output)
}

// SearchUrl builds the search results url for a resolved catalog record
// and a validated query.
func SearchUrl(rec catalog.Record, q listing.Query) string {
	stkTyp := "U"
	if q.Condition == "new" {
		stkTyp = "N"
	}

	values := url.Values{}
	values.Set("mkId", rec.MakerCode)
	values.Set("mdId", rec.ModelCode)
	values.Set("zc", strconv.Itoa(q.Zip))
	values.Set("rd", strconv.Itoa(q.Radius))
	values.Set("stkTyp", stkTyp)
	values.Set("perPage", "100")

	return baseUrl + "?" + values.Encode()
}
