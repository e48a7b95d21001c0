package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Client talks to the external bill ledger over its REST API. The ledger owns
// bill balances and status transitions; everything read here is validated and
// mapped into the strict internal schema at this boundary.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a bill ledger client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure Client implements the port.
var _ portssvc.BillLedgerSvcFacade = (*Client)(nil)

// billPayload is the ledger's wire shape for a bill. Fields are pointers so
// missing values fail validation explicitly instead of defaulting to zero.
type billPayload struct {
	BillID   *string          `json:"billID"`
	ClientID string           `json:"clientID"`
	Status   *string          `json:"status"`
	Total    *decimal.Decimal `json:"total"`
	Paid     *decimal.Decimal `json:"paid"`
	Balance  *decimal.Decimal `json:"balance"`
}

func (p *billPayload) toDomain() (*domain.Bill, error) {
	if p.BillID == nil || *p.BillID == "" {
		return nil, fmt.Errorf("%w: ledger bill is missing billID", apperrors.ErrValidation)
	}
	if p.Status == nil {
		return nil, fmt.Errorf("%w: ledger bill %s is missing status", apperrors.ErrValidation, *p.BillID)
	}
	status := domain.BillStatus(*p.Status)
	switch status {
	case domain.BillPending, domain.BillPartial, domain.BillPaid, domain.BillCancelled:
	default:
		return nil, fmt.Errorf("%w: ledger bill %s has unknown status %q", apperrors.ErrValidation, *p.BillID, *p.Status)
	}
	if p.Total == nil || p.Balance == nil {
		return nil, fmt.Errorf("%w: ledger bill %s is missing totals", apperrors.ErrValidation, *p.BillID)
	}
	bill := &domain.Bill{
		BillID:   *p.BillID,
		ClientID: p.ClientID,
		Status:   status,
		Total:    *p.Total,
		Balance:  *p.Balance,
	}
	if p.Paid != nil {
		bill.Paid = *p.Paid
	} else {
		bill.Paid = p.Total.Sub(*p.Balance)
	}
	return bill, nil
}

// GetBill fetches a single bill by id.
func (c *Client) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	endpoint := fmt.Sprintf("%s/bills/%s", c.baseURL, url.PathEscape(billID))

	var payload billPayload
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain()
}

// ListOutstandingBills lists the collector's bills that can still receive
// payments (status PENDING/PARTIAL, balance > 0).
func (c *Client) ListOutstandingBills(ctx context.Context, collectorID string) ([]domain.Bill, error) {
	endpoint := fmt.Sprintf("%s/collectors/%s/bills?status=outstanding", c.baseURL, url.PathEscape(collectorID))

	var payloads []billPayload
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &payloads); err != nil {
		return nil, err
	}

	bills := make([]domain.Bill, 0, len(payloads))
	for i := range payloads {
		bill, err := payloads[i].toDomain()
		if err != nil {
			return nil, err
		}
		// The ledger filter should already guarantee this; re-check rather
		// than trust the collaborator's query semantics.
		if bill.IsPayable() {
			bills = append(bills, *bill)
		}
	}
	return bills, nil
}

// PostPayment posts a payment against a bill. The ledger applies it and
// returns the bill with its updated balance and status.
func (c *Client) PostPayment(ctx context.Context, billID string, amount decimal.Decimal, method domain.PaymentMethod, details string) (*domain.Bill, error) {
	endpoint := fmt.Sprintf("%s/bills/%s/payments", c.baseURL, url.PathEscape(billID))
	body := map[string]any{
		"amount":  amount,
		"method":  method,
		"details": details,
	}

	var payload billPayload
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain()
}

// doJSON performs one request/response cycle against the ledger. Transport
// errors and 5xx responses map to ErrUpstreamUnavailable; 404 to ErrNotFound;
// other 4xx to ErrValidation.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode ledger request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to build ledger request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: ledger returned %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: bill not found in ledger", apperrors.ErrNotFound)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: ledger rejected request with %d", apperrors.ErrValidation, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: undecodable ledger response: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return nil
}
