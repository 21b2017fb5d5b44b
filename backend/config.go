package main

import "sync"

type Config struct {
	AiOpeningPlies          int     `json:"ai_opening_plies"`
	AiEasyTacticProb        float64 `json:"ai_easy_tactic_prob"`
	AiMctsTimeBudgetMs      int     `json:"ai_mcts_time_budget_ms"`
	AiMctsMaxPlayouts       int     `json:"ai_mcts_max_playouts"`
	AiMediumTimeBudgetMs    int     `json:"ai_medium_time_budget_ms"`
	AiMediumMaxPlayouts     int     `json:"ai_medium_max_playouts"`
	AiEndgameEmpties        int     `json:"ai_endgame_empties"`
	AiEndgameDepth          int     `json:"ai_endgame_depth"`
	AiEndgameRootBudgetMs   int     `json:"ai_endgame_root_budget_ms"`
	AiEndgameNodeBudgetMs   int     `json:"ai_endgame_node_budget_ms"`
	AiSafeCaptureThreatMax  int     `json:"ai_safe_capture_threat_max"`
	AiTtSize                int     `json:"ai_tt_size"`
	AiTtBuckets             int     `json:"ai_tt_buckets"`
	AiSeed                  int64   `json:"ai_seed"`
	AiLogSearchStats        bool    `json:"ai_log_search_stats"`
	Heuristics              HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig carries every tunable weight. Two diverging sets exist in
// the engine's history (classic vs advanced); the defaults below are the
// advanced set and ClassicHeuristics restores the older one. Which set is
// "correct" is deliberately left to configuration.
type HeuristicConfig struct {
	CenterOwnedBonus  int     `json:"center_owned_bonus"`
	WonBoardBonus     int     `json:"won_board_bonus"`
	CenterBoardWeight float64 `json:"center_board_weight"`
	CornerBoardWeight float64 `json:"corner_board_weight"`
	EdgeBoardWeight   float64 `json:"edge_board_weight"`
	WinScore          int     `json:"win_score"`

	// Move-ordering positional weights (endgame solver).
	PosCenterBoard int `json:"pos_center_board"`
	PosCornerBoard int `json:"pos_corner_board"`
	PosEdgeBoard   int `json:"pos_edge_board"`
	PosCenterCell  int `json:"pos_center_cell"`
	PosCornerCell  int `json:"pos_corner_cell"`
	PosFreeSend    int `json:"pos_free_send"`

	// MCTS prior weights.
	PriorBase       float64 `json:"prior_base"`
	PriorCenterBoard float64 `json:"prior_center_board"`
	PriorCenterCell float64 `json:"prior_center_cell"`
	PriorCornerCell float64 `json:"prior_corner_cell"`
	PriorOpenTarget float64 `json:"prior_open_target"`
	PriorFreeSend   float64 `json:"prior_free_send"`

	MctsCPuct      float64 `json:"mcts_c_puct"`
	MctsValueScale float64 `json:"mcts_value_scale"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		AiOpeningPlies:   2,
		AiEasyTacticProb: 0.3,

		AiMctsTimeBudgetMs: 7000,
		AiMctsMaxPlayouts:  40000,

		// Medium runs the same search on a short leash and never switches
		// to the endgame solver.
		AiMediumTimeBudgetMs: 2000,
		AiMediumMaxPlayouts:  4000,

		AiEndgameEmpties:      18,
		AiEndgameDepth:        10,
		AiEndgameRootBudgetMs: 5000,
		AiEndgameNodeBudgetMs: 4500,

		// One fresh meta two-in-a-row for the opponent already makes a
		// capture unsafe.
		AiSafeCaptureThreatMax: 0,

		AiTtSize:    1 << 16,
		AiTtBuckets: 4,

		AiSeed:           0, // 0 = time-seeded
		AiLogSearchStats: false,

		Heuristics: AdvancedHeuristics(),
	}
}

func AdvancedHeuristics() HeuristicConfig {
	return HeuristicConfig{
		CenterOwnedBonus:  500,
		WonBoardBonus:     1000,
		CenterBoardWeight: 2.0,
		CornerBoardWeight: 1.5,
		EdgeBoardWeight:   1.0,
		WinScore:          1000000,

		PosCenterBoard: 500,
		PosCornerBoard: 200,
		PosEdgeBoard:   100,
		PosCenterCell:  250,
		PosCornerCell:  100,
		PosFreeSend:    250,

		PriorBase:        1.0,
		PriorCenterBoard: 2.5,
		PriorCenterCell:  1.5,
		PriorCornerCell:  0.75,
		PriorOpenTarget:  0.6,
		PriorFreeSend:    1.2,

		MctsCPuct:      1.8,
		MctsValueScale: 1400.0,
	}
}

func ClassicHeuristics() HeuristicConfig {
	h := AdvancedHeuristics()
	h.WinScore = 10000
	h.MctsCPuct = 1.6
	h.MctsValueScale = 1200.0
	return h
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
