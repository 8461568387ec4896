package common

import (
	"encoding/json"
	"io"
	"os"
)

// CIResult is the single JSON document a tool prints in --ci mode.
type CIResult struct {
	OK      bool     `json:"ok"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Error   string   `json:"error,omitempty"`
}

var ciOutput io.Writer = os.Stdout

func NewCIResult(ok bool, title string, details []string, err error) CIResult {
	result := CIResult{OK: ok, Title: title, Details: details}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func PrintCIResult(ok bool, title string, details []string, err error) {
	enc := json.NewEncoder(ciOutput)
	enc.SetIndent("", "  ")
	_ = enc.Encode(NewCIResult(ok, title, details, err))
}
