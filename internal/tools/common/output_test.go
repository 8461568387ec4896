package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestPrintCIResult(t *testing.T) {
	var buf bytes.Buffer
	orig := ciOutput
	ciOutput = &buf
	t.Cleanup(func() { ciOutput = orig })

	PrintCIResult(false, "migrate up", []string{"dialect: sqlite"}, errors.New("no such table"))

	var got CIResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.OK || got.Title != "migrate up" || got.Error != "no such table" || len(got.Details) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestNewCIResultOmitsEmptyError(t *testing.T) {
	res := NewCIResult(true, "loadgen run", nil, nil)
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"ok":true,"title":"loadgen run"}` {
		t.Fatalf("unexpected json: %s", raw)
	}
}
