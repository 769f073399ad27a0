package risk

// Direction represents the side of a trade candidate
type Direction int

const (
	DirectionLong  Direction = 1
	DirectionShort Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirectionLong:
		return "long"
	case DirectionShort:
		return "short"
	default:
		return "unknown"
	}
}

// PositionSide represents the side of an open position snapshot
type PositionSide string

const (
	SideLong  PositionSide = "LONG"
	SideShort PositionSide = "SHORT"
)

// TradeAction represents the action recorded for a historical trade
type TradeAction string

const (
	ActionBuy  TradeAction = "BUY"
	ActionSell TradeAction = "SELL"
)

// OpenPosition is a read-only snapshot of a position owned by the execution layer
type OpenPosition struct {
	Symbol     string       `json:"symbol"`
	Side       PositionSide `json:"side"`
	EntryPrice float64      `json:"entry_price"`
	Size       float64      `json:"size"`
	Value      float64      `json:"value"` // current notional value
}

// TradeRecord is a single entry from the append-only trade history
type TradeRecord struct {
	Symbol     string      `json:"symbol"`
	Action     TradeAction `json:"action"`
	Price      float64     `json:"price"`
	Size       float64     `json:"size"`
	ProfitLoss float64     `json:"profit_loss"`
}

// RiskStatus classifies the overall portfolio risk level
type RiskStatus string

const (
	RiskStatusLow    RiskStatus = "Low"
	RiskStatusMedium RiskStatus = "Medium"
	RiskStatusHigh   RiskStatus = "High"
)

// RiskReport aggregates trade history and open positions into portfolio
// risk metrics. Computed fresh per call, carries no state across calls.
type RiskReport struct {
	TotalExposure      float64    `json:"total_exposure"`
	ExposurePct        float64    `json:"exposure_pct"`
	OpenPositionsCount int        `json:"open_positions_count"`
	WinRatePct         float64    `json:"win_rate_pct"`
	AvgWin             float64    `json:"avg_win"`
	AvgLoss            float64    `json:"avg_loss"`    // mean of losing trades, <= 0
	RiskReward         float64    `json:"risk_reward"` // +Inf when there are no losing trades
	Expectancy         float64    `json:"expectancy"`
	Status             RiskStatus `json:"risk_status"`
}
