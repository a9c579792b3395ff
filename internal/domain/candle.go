package domain

import "encoding/json"

// CandlePoint is a single normalized close-price point. It serializes as the
// two-element array [timestampMs, close] that the chart UI consumes.
type CandlePoint struct {
	TimestampMs int64
	Close       float64
}

func (p CandlePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.TimestampMs), p.Close})
}

func (p *CandlePoint) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.TimestampMs = int64(pair[0])
	p.Close = pair[1]
	return nil
}
