package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christiaansc/Codec-BoBAssistant/pkg/bob"
)

func TestRunDecodePrintsJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDecode(&out, bob.Options{}, "537e40"))

	var res bob.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "startstop", res.Type)
	assert.Equal(t, "MACHINE_START", res.Msg["state"])
}

func TestRunDecodeError(t *testing.T) {
	var out bytes.Buffer
	require.ErrorIs(t, runDecode(&out, bob.Options{}, "5240"), bob.ErrInvalidPayloadLength)
	assert.Empty(t, out.String())
}

func TestRunInteractiveSkipsBadLines(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("537e40\n\nzz\n736a00\n")
	require.NoError(t, runInteractive(in, &out, bob.Options{}))
	assert.Equal(t, 2, strings.Count(out.String(), `"status": "success"`))
}

func TestPrintKinds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printKinds(&out))
	text := out.String()
	for _, want := range []string{"learning", "report", "alarm", "startstop", "MPU6500", "25600"} {
		assert.Contains(t, text, want)
	}
}
