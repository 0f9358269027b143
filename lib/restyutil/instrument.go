package restyutil

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type InstrumentOutput interface {
	Write(id string, contents string)
}

type instrumentCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

// `output` can be nil, if it is, then the function is a no-op
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	i := instrumentCtx{output: output, idcounter: &idcounter}
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrumentCtx) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	slog.DebugContext(
		req.Context(), "start request",
		"method", req.Method,
		"url", req.URL,
	)
	return nil
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	messageId := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)
	i.output.Write(messageId, formatHttpMessage(res))
	slog.DebugContext(
		res.Request.Context(), "request succeeded",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"message_id", messageId,
	)
	return nil
}

func (i instrumentCtx) onError(req *resty.Request, err error) {
	slog.ErrorContext(
		req.Context(), "request failed",
		"method", req.Method,
		"url", req.URL,
		"err", err,
	)
}

func formatHttpMessage(res *resty.Response) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", res.Request.Method, res.Request.URL)
	if res.RawResponse != nil {
		fmt.Fprintf(&b, "%s\n", res.RawResponse.Status)
		for key, values := range res.RawResponse.Header {
			for _, v := range values {
				fmt.Fprintf(&b, "%s: %s\n", key, v)
			}
		}
	}
	b.WriteString("\n")
	b.Write(res.Body())

	return b.String()
}
