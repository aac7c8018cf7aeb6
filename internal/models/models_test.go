package models

import "testing"

func TestKindForCode(t *testing.T) {
	cases := []struct {
		code int
		want WeatherKind
	}{
		{0, WeatherClear},
		{3, WeatherCloudy},
		{61, WeatherRain},
		{71, WeatherSnow},
		{95, WeatherStorm},
	}
	for _, tc := range cases {
		if got := KindForCode(tc.code); got != tc.want {
			t.Fatalf("KindForCode(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestDescriptionForCode(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "快晴"},
		{1, "ほぼ晴れ"},
		{2, "一部曇り"},
		{3, "曇り"},
		{45, "霧"},
		{51, "霧雨"},
		{61, "雨"},
		{71, "雪"},
		{80, "にわか雨"},
		{95, "雷雨"},
	}
	for _, tc := range cases {
		if got := DescriptionForCode(tc.code); got != tc.want {
			t.Fatalf("DescriptionForCode(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
