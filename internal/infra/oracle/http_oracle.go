package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultOracleTimeout = 10 * time.Second

// httpOracle delegates ranking to an external HTTP service.
type httpOracle struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPOracle creates a new HTTP oracle instance
func NewHTTPOracle(endpoint string, timeout time.Duration, logger *slog.Logger) service.RankingOracle {
	if timeout <= 0 {
		timeout = defaultOracleTimeout
	}

	return &httpOracle{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// rankRequest is the wire format sent to the external oracle.
type rankRequest struct {
	DonationID string          `json:"donation_id"`
	Categories []string        `json:"categories"`
	Candidates []rankCandidate `json:"candidates"`
}

type rankCandidate struct {
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	DistanceKm     float64 `json:"distance_km"`
	PriorityScore  int     `json:"priority_score"`
	Capacity       int     `json:"capacity"`
}

// rankResponse is the wire format returned by the external oracle.
type rankResponse struct {
	OrganizationID string `json:"organization_id"`
}

// Rank asks the external service to pick the best candidate. The returned
// organization is resolved against the candidate set; an answer outside the
// set is a contract violation reported to the caller.
func (o *httpOracle) Rank(ctx context.Context, donation *entity.Donation, candidates []*entity.MatchCandidate) (*entity.Organization, error) {
	if len(candidates) == 0 {
		return nil, errors.New("no candidates to rank")
	}

	reqBody := rankRequest{
		DonationID: donation.ID.String(),
		Candidates: make([]rankCandidate, 0, len(candidates)),
	}
	for _, category := range donation.Categories() {
		reqBody.Categories = append(reqBody.Categories, category.String())
	}
	for _, candidate := range candidates {
		reqBody.Candidates = append(reqBody.Candidates, rankCandidate{
			OrganizationID: candidate.Organization.ID.String(),
			Name:           candidate.Organization.Name,
			DistanceKm:     candidate.DistanceKm,
			PriorityScore:  candidate.PriorityScore,
			Capacity:       candidate.Organization.Capacity,
		})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "oracle request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("oracle returned non-success status: %d", resp.StatusCode)
	}

	var rankResp rankResponse
	if err := json.NewDecoder(resp.Body).Decode(&rankResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode oracle response")
	}

	// An empty organization_id is the service declining to recommend anyone.
	if rankResp.OrganizationID == "" {
		return nil, nil
	}

	chosenID, err := uuid.Parse(rankResp.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "oracle returned invalid organization ID")
	}

	for _, candidate := range candidates {
		if candidate.Organization.ID == chosenID {
			o.logger.Debug("Oracle recommendation resolved",
				slog.String("donation_id", donation.ID.String()),
				slog.String("organization_id", chosenID.String()),
			)

			return candidate.Organization, nil
		}
	}

	return nil, service.ErrOracleContract
}
