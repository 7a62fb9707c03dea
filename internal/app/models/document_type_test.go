package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentTypeIsValid(t *testing.T) {
	for _, dt := range DocumentTypes {
		assert.True(t, dt.IsValid(), "expected %q to be valid", dt)
	}
}

func TestDocumentTypeRejectsUnknownTags(t *testing.T) {
	for _, raw := range []string{"", "CERTIFICATE", "trainees_data_form", "OTHER"} {
		assert.False(t, DocumentType(raw).IsValid(), "expected %q to be invalid", raw)
	}
}
