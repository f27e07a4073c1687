package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
)

// CSV option templates travel through the system clipboard as JSON so they
// can be pasted across running instances; the session keeps an in-process
// copy as fallback for environments without a clipboard.

func optionsToClipboard(opts CSVFile) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

func optionsFromClipboard() (*CSVFile, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}
	var opts CSVFile
	if err := json.Unmarshal([]byte(text), &opts); err != nil {
		return nil, fmt.Errorf("clipboard does not hold CSV options: %w", err)
	}
	return &opts, nil
}

func textToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
