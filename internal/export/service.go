package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

// ZReadSource looks up committed Z-Read snapshots.
type ZReadSource interface {
	GetZRead(ctx context.Context, storeCode string, day time.Time) (*reconcile.Preview, error)
}

// Item is one file written for an exported snapshot.
type Item struct {
	Preview  *reconcile.Preview
	FilePath string
}

// Service hands Z-Read snapshots to the accreditation endpoint and writes them to disk.
type Service struct {
	zreads   ZReadSource
	client   *http.Client
	url      string
	apiToken string
}

// NewService creates a new export Service. An empty url disables publishing.
func NewService(zreads ZReadSource, url, apiToken string) *Service {
	return &Service{
		zreads:   zreads,
		client:   &http.Client{Timeout: 30 * time.Second},
		url:      url,
		apiToken: apiToken,
	}
}

// Publish posts a committed report to the accreditation endpoint.
func (s *Service) Publish(ctx context.Context, r *reconcile.Report) error {
	if s.url == "" {
		slog.Debug("export endpoint not configured, skipping publish", "store", r.StoreCode)
		return nil
	}

	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if s.apiToken != "" {
		req.Header.Set("Authorization", "Token "+s.apiToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code %d from %s: %s", resp.StatusCode, s.url, strings.TrimSpace(string(msg)))
	}

	slog.Info("z-read published", "store", r.StoreCode, "from", r.From)

	return nil
}

// Republish sends the stored snapshot of a day again.
func (s *Service) Republish(ctx context.Context, storeCode string, day time.Time) error {
	p, err := s.zreads.GetZRead(ctx, storeCode, day)
	if err != nil {
		return err
	}

	return s.Publish(ctx, p.Report)
}

// Export writes the stored Z-Read of a day to outputDir as JSON and as a printable
// summary. It refuses to run until the day has been closed.
func (s *Service) Export(ctx context.Context, storeCode string, day time.Time, outputDir string) ([]Item, error) {
	p, err := s.zreads.GetZRead(ctx, storeCode, day)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := fileBase(p)

	raw, err := json.MarshalIndent(p.Report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}

	jsonPath := filepath.Join(outputDir, base+".json")
	if err := os.WriteFile(jsonPath, raw, 0o644); err != nil {
		return nil, fmt.Errorf("writing file: %w", err)
	}

	textPath := filepath.Join(outputDir, base+".txt")
	if err := os.WriteFile(textPath, []byte(s.GenerateSummary(p.Report)), 0o644); err != nil {
		return nil, fmt.Errorf("writing file: %w", err)
	}

	return []Item{
		{Preview: p, FilePath: jsonPath},
		{Preview: p, FilePath: textPath},
	}, nil
}

// fileBase sanitizes the store code for use in a filename.
// Format: zread_STORE_YYYYMMDD
func fileBase(p *reconcile.Preview) string {
	safeStore := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, p.StoreCode)

	return fmt.Sprintf("zread_%s_%s", safeStore, strings.ReplaceAll(p.Day, "-", ""))
}

// GenerateSummary renders the printable audit footer of a report.
func (s *Service) GenerateSummary(r *reconcile.Report) string {
	var sb strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&sb, "%-24s %14s\n", label, value)
	}

	title := strings.ToUpper(string(r.Type))
	fmt.Fprintf(&sb, "%s | STORE %s | %s\n", title, r.StoreCode, r.From.Format("2006-01-02"))

	if r.Partial {
		sb.WriteString("** PARTIAL: some figures unavailable **\n")
	}

	sb.WriteString(strings.Repeat("-", 39) + "\n")

	line("GROSS SALES", Amount(r.Sales.Gross))
	line("NET SALES", Amount(r.Sales.Net))
	line("VATABLE SALES", Amount(r.VAT.Details.VatableSales))
	line("VAT AMOUNT", Amount(r.VAT.Details.VATAmount))
	line("VAT EXEMPT", Amount(r.VAT.Details.VATExempt))
	line("ZERO RATED", Amount(r.VAT.Details.VATZeroRated))
	line("DISCOUNTS", Amount(r.CashierAudit.TotalDiscountAmount))
	sb.WriteString(strings.Repeat("-", 39) + "\n")

	line("CASH", Amount(r.Payments.Cash.Total))
	line("NON-CASH", Amount(r.Payments.Summary.NonCash.Total))
	line("INITIAL FUND", Amount(r.InitialFund.Total))
	line("TOTAL IN DRAWER", Amount(r.CashDrop.TotalInDrawer))
	line("CASH DECLARATION", Amount(r.CashDrop.TotalCashDeclaration))
	line("OVER/SHORT", Amount(r.OverShort))
	line("FINAL TOTAL", Amount(r.FinalTotal))
	sb.WriteString(strings.Repeat("-", 39) + "\n")

	line("SALES TXN", Count(r.CashierAudit.NumSalesTxn))
	line("VOID TXN", Count(r.CashierAudit.NumVoidTxn))
	line("REFUND TXN", Count(r.CashierAudit.NumRefundTxn))
	line("RETURN TXN", Count(r.CashierAudit.NumReturnTxn))
	line("AVE BASKET", Amount(r.CashierAudit.AveBasket))
	line("SI FROM", r.SINum.From)
	line("SI TO", r.SINum.To)

	if r.AccumulatedSales != nil {
		sb.WriteString(strings.Repeat("-", 39) + "\n")
		line("OLD ACCUMULATED SALES", Amount(r.AccumulatedSales.Old))
		line("NEW ACCUMULATED SALES", Amount(r.AccumulatedSales.New))
	}

	if r.ZReadLogsCount != nil {
		line("ZREAD COUNT", Count(*r.ZReadLogsCount+1))
	}

	return sb.String()
}
