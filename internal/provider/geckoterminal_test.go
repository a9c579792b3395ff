package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func rawRows(rows ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = json.RawMessage(r)
	}
	return out
}

func TestExtractCandleListShapes(t *testing.T) {
	bodies := []string{
		`{"data":{"attributes":{"ohlcv_list":[[1700000000,1,1,1,1.5,100]]}}}`,
		`{"data":{"attributes":{"ohlcv":[[1700000000,1,1,1,1.5,100]]}}}`,
		`{"candles":[[1700000000,1,1,1,1.5,100]]}`,
	}
	for _, body := range bodies {
		rows, ok := extractCandleList([]byte(body))
		if !ok || len(rows) != 1 {
			t.Fatalf("expected one row from %s, got %v (ok=%v)", body, rows, ok)
		}
	}

	if _, ok := extractCandleList([]byte(`{"data":{"attributes":{}}}`)); ok {
		t.Fatal("expected no candle list")
	}
}

func TestExtractCandleListPrefersFirstKey(t *testing.T) {
	body := `{"data":{"attributes":{"ohlcv":[[2,0,0,0,0.2,0]],"ohlcv_list":[[1,0,0,0,0.1,0]]}}}`
	rows, ok := extractCandleList([]byte(body))
	if !ok {
		t.Fatal("expected candle list")
	}
	var tuple []float64
	if err := json.Unmarshal(rows[0], &tuple); err != nil || tuple[0] != 1 {
		t.Fatalf("expected ohlcv_list to win, got %s", rows[0])
	}
}

func TestNormalizeCandlesDropsMalformedRows(t *testing.T) {
	rows := rawRows(
		`[1700000000,1,1,1,1.5,100]`,
		`"not an array"`,
		`[1700001800,2]`,
		`[1700003600,2,2,2,2.5,50]`,
	)

	points := NormalizeCandles(rows)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].TimestampMs != 1700000000000 || points[0].Close != 1.5 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].TimestampMs != 1700003600000 || points[1].Close != 2.5 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestNormalizeCandlesKeepsMillisecondTimestamps(t *testing.T) {
	points := NormalizeCandles(rawRows(`[1700000000000,1,1,1,3.5,10]`))
	if len(points) != 1 || points[0].TimestampMs != 1700000000000 {
		t.Fatalf("millisecond timestamps must pass through, got %+v", points)
	}
}

func TestNormalizeCandlesBounds(t *testing.T) {
	rows := make([]json.RawMessage, 60)
	for i := range rows {
		rows[i] = json.RawMessage(fmt.Sprintf("[%d,1,1,1,%d,0]", 1700000000+i*3600, i))
	}

	points := NormalizeCandles(rows)
	if len(points) != OHLCVLimit {
		t.Fatalf("expected %d points, got %d", OHLCVLimit, len(points))
	}
	if points[0].Close != 12 || points[len(points)-1].Close != 59 {
		t.Fatalf("expected most recent points in order, got first=%+v last=%+v", points[0], points[len(points)-1])
	}
}

func TestFetchOHLCVBuildsURL(t *testing.T) {
	t.Parallel()

	p := NewGeckoTerminalProvider(noopTracer())
	p.baseURL = "http://example"
	p.limiter = NewRateLimiter(10, 1)
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			want := "/networks/polygon_pos/pools/0xabc/ohlcv/hour"
			if req.URL.Path != want {
				t.Fatalf("unexpected path %s, want %s", req.URL.Path, want)
			}
			if req.URL.Query().Get("aggregate") != "1" || req.URL.Query().Get("limit") != "48" {
				t.Fatalf("unexpected query: %s", req.URL.RawQuery)
			}
			return jsonResponse(http.StatusOK,
				`{"data":{"attributes":{"ohlcv_list":[[1700000000,1,1,1,1.5,100]]}}}`), nil
		}),
	}

	rows, err := p.FetchOHLCV(context.Background(), "polygon_pos", "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
}

func TestFetchOHLCVNoCandleList(t *testing.T) {
	t.Parallel()

	p := NewGeckoTerminalProvider(noopTracer())
	p.baseURL = "http://example"
	p.limiter = NewRateLimiter(10, 1)
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"data":{"attributes":{"something_else":true}}}`), nil
		}),
	}

	if _, err := p.FetchOHLCV(context.Background(), "eth", "0xabc"); err == nil {
		t.Fatal("expected missing candle list error")
	}
}
