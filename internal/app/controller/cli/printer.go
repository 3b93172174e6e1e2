package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/avGenie/go-coffee-settlement/internal/app/converter"
	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
	"github.com/google/uuid"
)

var (
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

type Printer struct {
	out    io.Writer
	format model.OutputFormat
}

func NewPrinter(out io.Writer, format string) (*Printer, error) {
	outputFormat := model.OutputFormat(format)
	if outputFormat != model.FormatText && outputFormat != model.FormatJSON {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOutputFormat, format)
	}

	return &Printer{
		out:    out,
		format: outputFormat,
	}, nil
}

func (p *Printer) PrintSettlements(runID uuid.UUID, generatedAt time.Time, settlements entity.Settlements) error {
	if p.format == model.FormatJSON {
		return p.printJSON(converter.ConvertSettlementsToReport(runID, generatedAt, settlements))
	}

	return p.printText(converter.ConvertSettlementsToResponses(settlements))
}

func (p *Printer) printJSON(report model.SettlementReport) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("error while marshalling settlement report: %w", err)
	}

	_, err = fmt.Fprintln(p.out, string(out))
	if err != nil {
		return fmt.Errorf("error while writing settlement report: %w", err)
	}

	return nil
}

func (p *Printer) printText(responses model.SettlementResponses) error {
	for _, response := range responses {
		_, err := fmt.Fprintf(p.out, "%s: amount paid = %s, amount owed = %s\n",
			response.User,
			formatAmount(response.AmountPaid),
			formatAmount(response.AmountOwed),
		)
		if err != nil {
			return fmt.Errorf("error while writing settlement of user %s: %w", response.User, err)
		}
	}

	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
