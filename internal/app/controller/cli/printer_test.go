package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	runID       = uuid.MustParse("ac2a4811-4f10-487f-bde3-e39a14af7cd8")
	generatedAt = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

	settlements = entity.Settlements{
		"bob":   {AmountPaid: 3.0, AmountOwed: -0.5},
		"carol": {AmountPaid: 0, AmountOwed: 2.0},
		"alice": {AmountPaid: 5.0, AmountOwed: -1.5},
	}
)

func TestPrintSettlementsText(t *testing.T) {
	out := &bytes.Buffer{}
	printer, err := NewPrinter(out, "text")
	require.NoError(t, err)

	err = printer.PrintSettlements(runID, generatedAt, settlements)
	require.NoError(t, err)

	expected := "alice: amount paid = 5, amount owed = -1.5\n" +
		"bob: amount paid = 3, amount owed = -0.5\n" +
		"carol: amount paid = 0, amount owed = 2\n"
	assert.Equal(t, expected, out.String())
}

func TestPrintSettlementsJSON(t *testing.T) {
	out := &bytes.Buffer{}
	printer, err := NewPrinter(out, "json")
	require.NoError(t, err)

	err = printer.PrintSettlements(runID, generatedAt, settlements)
	require.NoError(t, err)

	var report model.SettlementReport
	err = json.Unmarshal(out.Bytes(), &report)
	require.NoError(t, err)

	assert.Equal(t, model.SettlementReport{
		RunID:       runID.String(),
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Settlements: model.SettlementResponses{
			{User: "alice", AmountPaid: 5.0, AmountOwed: -1.5},
			{User: "bob", AmountPaid: 3.0, AmountOwed: -0.5},
			{User: "carol", AmountPaid: 0, AmountOwed: 2.0},
		},
	}, report)
}

func TestPrintEmptySettlements(t *testing.T) {
	out := &bytes.Buffer{}
	printer, err := NewPrinter(out, "json")
	require.NoError(t, err)

	err = printer.PrintSettlements(runID, generatedAt, entity.Settlements{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"settlements": []`)
}

func TestNewPrinterUnknownFormat(t *testing.T) {
	printer, err := NewPrinter(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, ErrUnknownOutputFormat)
	assert.Nil(t, printer)
}
