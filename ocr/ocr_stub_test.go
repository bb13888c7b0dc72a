//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	for name, ctor := range map[string]func() (*Client, error){
		"New":             New,
		"NewAnswerReader": NewAnswerReader,
	} {
		client, err := ctor()
		if err == nil {
			t.Errorf("Expected error from %s() when OCR is disabled", name)
		}
		if !errors.Is(err, ErrOCRNotEnabled) {
			t.Errorf("Expected ErrOCRNotEnabled from %s, got: %v", name, err)
		}
		if client != nil {
			t.Errorf("Expected nil client from %s when OCR is disabled", name)
		}
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	err := client.Close()
	if err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestStubMethodsReturnError(t *testing.T) {
	client := &Client{}
	if _, err := client.RecognizeImage([]byte{0}); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage error = %v", err)
	}
	if err := client.SetWhitelist(AnswerCharacters); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetWhitelist error = %v", err)
	}
	if err := client.SetPageSegMode(PSM_SPARSE_TEXT); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode error = %v", err)
	}
}
