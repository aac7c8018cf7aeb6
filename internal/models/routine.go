package models

// Task is one to-do entry.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	DueDate   string   `json:"dueDate,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RoutineItem is one configurable checklist entry.
type RoutineItem struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Icon             string `json:"icon"`
	Order            int    `json:"order"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Enabled          bool   `json:"enabled"`
}

// DailyProgress records one calendar day of routine completion.
type DailyProgress struct {
	Date           string            `json:"date"`
	CompletedItems []string          `json:"completedItems"`
	CompletedAt    string            `json:"completedAt,omitempty"`
	Timestamps     map[string]string `json:"timestamps"`
}

// StreakInfo tracks consecutive full-completion days.
type StreakInfo struct {
	Current           int    `json:"current"`
	Longest           int    `json:"longest"`
	LastCompletedDate string `json:"lastCompletedDate"`
}

// DefaultRoutineItems is the standard template.
var DefaultRoutineItems = []RoutineItem{
	{ID: "1", Title: "起床", Icon: "🌅", Order: 1, EstimatedMinutes: 0, Enabled: true},
	{ID: "2", Title: "歯磨き", Icon: "🪥", Order: 2, EstimatedMinutes: 3, Enabled: true},
	{ID: "3", Title: "洗顔", Icon: "🧼", Order: 3, EstimatedMinutes: 2, Enabled: true},
	{ID: "4", Title: "ストレッチ", Icon: "🧘", Order: 4, EstimatedMinutes: 5, Enabled: true},
	{ID: "5", Title: "朝食", Icon: "🍽️", Order: 5, EstimatedMinutes: 15, Enabled: true},
	{ID: "6", Title: "着替え", Icon: "👔", Order: 6, EstimatedMinutes: 5, Enabled: true},
	{ID: "7", Title: "持ち物確認", Icon: "🎒", Order: 7, EstimatedMinutes: 3, Enabled: true},
	{ID: "8", Title: "出発準備", Icon: "🚪", Order: 8, EstimatedMinutes: 2, Enabled: true},
}

// RoutineTemplates are the selectable item presets.
var RoutineTemplates = map[string][]RoutineItem{
	"minimal": {
		{ID: "1", Title: "起床", Icon: "🌅", Order: 1, EstimatedMinutes: 0, Enabled: true},
		{ID: "2", Title: "歯磨き", Icon: "🪥", Order: 2, EstimatedMinutes: 3, Enabled: true},
		{ID: "3", Title: "着替え", Icon: "👔", Order: 3, EstimatedMinutes: 5, Enabled: true},
	},
	"standard": DefaultRoutineItems,
	"full": {
		{ID: "1", Title: "起床", Icon: "🌅", Order: 1, EstimatedMinutes: 0, Enabled: true},
		{ID: "2", Title: "水を飲む", Icon: "💧", Order: 2, EstimatedMinutes: 1, Enabled: true},
		{ID: "3", Title: "歯磨き", Icon: "🪥", Order: 3, EstimatedMinutes: 3, Enabled: true},
		{ID: "4", Title: "洗顔", Icon: "🧼", Order: 4, EstimatedMinutes: 2, Enabled: true},
		{ID: "5", Title: "ストレッチ", Icon: "🧘", Order: 5, EstimatedMinutes: 10, Enabled: true},
		{ID: "6", Title: "シャワー", Icon: "🚿", Order: 6, EstimatedMinutes: 10, Enabled: true},
		{ID: "7", Title: "朝食", Icon: "🍽️", Order: 7, EstimatedMinutes: 20, Enabled: true},
		{ID: "8", Title: "着替え", Icon: "👔", Order: 8, EstimatedMinutes: 5, Enabled: true},
		{ID: "9", Title: "瞑想", Icon: "🧘‍♂️", Order: 9, EstimatedMinutes: 5, Enabled: true},
		{ID: "10", Title: "持ち物確認", Icon: "🎒", Order: 10, EstimatedMinutes: 3, Enabled: true},
		{ID: "11", Title: "出発準備", Icon: "🚪", Order: 11, EstimatedMinutes: 2, Enabled: true},
	},
}
