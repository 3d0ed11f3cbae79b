// Package apis holds helpers shared by the HTTP clients.
package apis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// StatusError reports a non-2xx response with its body, indented when it is JSON.
func StatusError(response *resty.Response) error {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, response.Body(), "", "  "); err != nil {
		return fmt.Errorf("status code: %d\n%s", response.StatusCode(), response.Body())
	}

	return fmt.Errorf("status code: %d\n%s", response.StatusCode(), buf.String())
}

// FailureLevel is Debug when ctx was cancelled, Error otherwise. A cancelled
// request was superseded or the program is stopping.
func FailureLevel(ctx context.Context) slog.Level {
	if ctx.Err() != nil {
		return slog.LevelDebug
	}
	return slog.LevelError
}
