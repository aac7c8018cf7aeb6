package models

// Location is a registered place usable as the weather target.
type Location struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Country           string  `json:"country,omitempty"`
	IsCurrentLocation bool    `json:"isCurrentLocation,omitempty"`
}

// LocationPreset is a selectable city from the fixed catalogues.
type LocationPreset struct {
	ID         string
	Name       string
	NameEn     string
	Latitude   float64
	Longitude  float64
	Country    string
	Prefecture string
}

// JapanCities is the domestic preset catalogue; the first five are also
// the default registered locations.
var JapanCities = []LocationPreset{
	{ID: "tokyo", Name: "東京", NameEn: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Country: "日本", Prefecture: "東京都"},
	{ID: "osaka", Name: "大阪", NameEn: "Osaka", Latitude: 34.6937, Longitude: 135.5023, Country: "日本", Prefecture: "大阪府"},
	{ID: "nagoya", Name: "名古屋", NameEn: "Nagoya", Latitude: 35.1815, Longitude: 136.9066, Country: "日本", Prefecture: "愛知県"},
	{ID: "sapporo", Name: "札幌", NameEn: "Sapporo", Latitude: 43.0642, Longitude: 141.3469, Country: "日本", Prefecture: "北海道"},
	{ID: "fukuoka", Name: "福岡", NameEn: "Fukuoka", Latitude: 33.5904, Longitude: 130.4017, Country: "日本", Prefecture: "福岡県"},
	{ID: "yokohama", Name: "横浜", NameEn: "Yokohama", Latitude: 35.4437, Longitude: 139.6380, Country: "日本", Prefecture: "神奈川県"},
	{ID: "kobe", Name: "神戸", NameEn: "Kobe", Latitude: 34.6901, Longitude: 135.1955, Country: "日本", Prefecture: "兵庫県"},
	{ID: "kyoto", Name: "京都", NameEn: "Kyoto", Latitude: 35.0116, Longitude: 135.7681, Country: "日本", Prefecture: "京都府"},
	{ID: "sendai", Name: "仙台", NameEn: "Sendai", Latitude: 38.2682, Longitude: 140.8694, Country: "日本", Prefecture: "宮城県"},
	{ID: "hiroshima", Name: "広島", NameEn: "Hiroshima", Latitude: 34.3853, Longitude: 132.4553, Country: "日本", Prefecture: "広島県"},
	{ID: "niigata", Name: "新潟", NameEn: "Niigata", Latitude: 37.9161, Longitude: 139.0364, Country: "日本", Prefecture: "新潟県"},
	{ID: "okinawa", Name: "那覇", NameEn: "Naha", Latitude: 26.2124, Longitude: 127.6809, Country: "日本", Prefecture: "沖縄県"},
}

// WorldCities is the international preset catalogue.
var WorldCities = []LocationPreset{
	{ID: "newyork", Name: "ニューヨーク", NameEn: "New York", Latitude: 40.7128, Longitude: -74.0060, Country: "アメリカ"},
	{ID: "london", Name: "ロンドン", NameEn: "London", Latitude: 51.5074, Longitude: -0.1278, Country: "イギリス"},
	{ID: "paris", Name: "パリ", NameEn: "Paris", Latitude: 48.8566, Longitude: 2.3522, Country: "フランス"},
	{ID: "singapore", Name: "シンガポール", NameEn: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Country: "シンガポール"},
	{ID: "shanghai", Name: "上海", NameEn: "Shanghai", Latitude: 31.2304, Longitude: 121.4737, Country: "中国"},
	{ID: "seoul", Name: "ソウル", NameEn: "Seoul", Latitude: 37.5665, Longitude: 126.9780, Country: "韓国"},
	{ID: "sydney", Name: "シドニー", NameEn: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Country: "オーストラリア"},
}

// AllCityPresets is both catalogues in display order.
func AllCityPresets() []LocationPreset {
	out := make([]LocationPreset, 0, len(JapanCities)+len(WorldCities))
	out = append(out, JapanCities...)
	out = append(out, WorldCities...)
	return out
}

// DefaultLocations are registered on first run and migrated into older
// persisted lists.
func DefaultLocations() []Location {
	out := make([]Location, 0, 5)
	for _, c := range JapanCities[:5] {
		out = append(out, Location{ID: c.ID, Name: c.Name, Latitude: c.Latitude, Longitude: c.Longitude, Country: c.Country})
	}
	return out
}
