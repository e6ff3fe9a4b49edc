// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-steward-keeper/internal/app"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, fmt.Errorf("distribute: %w", service.ErrNotReadyToDistribute))

	assert.Contains(t, buf.String(), "error: "+app.MsgNotReady)
	assert.Contains(t, buf.String(), "distribute: ")
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	newPrinter(&buf).Table("A\tB", [][]any{{"one", 1}, {"three", 3}})

	assert.Equal(t, "A      B\none    1\nthree  3\n", buf.String())
}

func TestShortAndFormatTime(t *testing.T) {
	assert.Equal(t, "abc", short("abc"))
	assert.Equal(t, "1a1a1a1a1a1a", short(ownerKey))
	assert.Equal(t, "-", formatTime(time.Time{}))
	assert.Equal(t, "x", deref[string](nil, "x"))
}
