package results

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Results"

var exportHeader = []any{
	"Result ID", "House ID", "Draw ID", "Winning Ticket", "Prize Position", "Prize Type",
	"Prize Value", "Prize Description", "Verified", "Claimed", "Claimed At", "Result Date",
}

// Export writes every lottery result as an XLSX workbook.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	const op = "service.results.Export"

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, r := range all {
		claimedAt := ""
		if r.ClaimedAt != nil {
			claimedAt = r.ClaimedAt.UTC().Format("2006-01-02 15:04:05")
		}

		row := []any{
			r.ID.String(),
			r.HouseID,
			r.DrawID.String(),
			r.WinnerTicketNumber,
			r.PrizePosition,
			r.PrizeType,
			r.PrizeValue,
			r.PrizeDescription,
			r.IsVerified,
			r.IsClaimed,
			claimedAt,
			r.ResultDate.UTC().Format("2006-01-02 15:04:05"),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
