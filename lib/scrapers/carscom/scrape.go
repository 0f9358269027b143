package carscom

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"carhunt/lib/catalog"
	"carhunt/lib/htmlutil"
	"carhunt/lib/listing"

	"github.com/PuerkitoBio/goquery"
)

// Search fetches one page of search results for the query and parses the
// listing cards out of it.
func (c Client) Search(ctx context.Context, rec catalog.Record, q listing.Query) ([]listing.Listing, error) {
	link := SearchUrl(rec, q)

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("search returned status %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, err
	}
	return parseSearchResults(doc), nil
}

var digitsRegex = regexp.MustCompile(`\d+`)

// parseNumber pulls the digits out of strings like "$24,995" or
// "30,123 mi.". Unpriced listings ("Not Priced") come back as 0.
func parseNumber(s string) int {
	digits := digitsRegex.FindAllString(s, -1)
	var joined string
	for _, d := range digits {
		joined += d
	}
	if joined == "" {
		return 0
	}
	n, err := strconv.Atoi(joined)
	if err != nil {
		return 0
	}
	return n
}

func parseSearchResults(doc *goquery.Document) []listing.Listing {
	var listings []listing.Listing
	doc.Find("div.vehicle-card").Each(func(_ int, card *goquery.Selection) {
		title := htmlutil.CleanText(card.Find("h2.title"))
		if title == "" {
			return
		}

		href := card.Find("a.vehicle-card-link").AttrOr("href", "")
		listings = append(listings, listing.Listing{
			Title:   title,
			Price:   parseNumber(htmlutil.CleanText(card.Find("span.primary-price"))),
			Mileage: parseNumber(htmlutil.CleanText(card.Find("div.mileage"))),
			Dealer:  htmlutil.CleanText(card.Find("div.dealer-name")),
			Url:     href,
		})
	})
	return listings
}
