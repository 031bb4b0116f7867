package knack

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// envelope matches the wrapper Knack's application endpoint returns.
// Raw schema exports carry the application at the top level instead;
// both forms are accepted.
type envelope struct {
	Application *Application `json:"application"`
}

// Load reads an application schema from a local path or an HTTP(S)
// URL. Any fetch or parse failure is fatal for the run.
func Load(source string) (*Application, error) {
	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading schema from %s: %w", source, err)
	}

	return Parse(data)
}

// Parse decodes an application schema document, with or without the
// top-level "application" envelope.
func Parse(data []byte) (*Application, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing application schema: %w", err)
	}
	if env.Application != nil {
		return env.Application, nil
	}

	var app Application
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("parsing application schema: %w", err)
	}
	return &app, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
