package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Month
		wantErr bool
	}{
		{
			name:  "valid month",
			input: "2024-01",
			want:  NewMonth(2024, time.January),
		},
		{
			name:  "valid december",
			input: "2030-12",
			want:  NewMonth(2030, time.December),
		},
		{
			name:    "month zero",
			input:   "2024-00",
			wantErr: true,
		},
		{
			name:    "month thirteen",
			input:   "2024-13",
			wantErr: true,
		},
		{
			name:    "missing month part",
			input:   "2024",
			wantErr: true,
		},
		{
			name:    "full date",
			input:   "2024-01-15",
			wantErr: true,
		},
		{
			name:    "not a month at all",
			input:   "january",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMonth(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMonth_Compare(t *testing.T) {
	tests := []struct {
		name string
		m    Month
		o    Month
		want int
	}{
		{
			name: "equal",
			m:    NewMonth(2024, time.February),
			o:    NewMonth(2024, time.February),
			want: 0,
		},
		{
			name: "earlier month same year",
			m:    NewMonth(2024, time.January),
			o:    NewMonth(2024, time.June),
			want: -1,
		},
		{
			name: "earlier year later month",
			m:    NewMonth(2023, time.December),
			o:    NewMonth(2024, time.January),
			want: -1,
		},
		{
			name: "years far apart",
			m:    NewMonth(2030, time.December),
			o:    NewMonth(2024, time.January),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Compare(tt.o); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.m.Before(tt.o); got != (tt.want < 0) {
				t.Errorf("Before() = %v, want %v", got, tt.want < 0)
			}
			if got := tt.m.After(tt.o); got != (tt.want > 0) {
				t.Errorf("After() = %v, want %v", got, tt.want > 0)
			}
		})
	}
}

func TestMonth_String(t *testing.T) {
	m := NewMonth(2024, time.March)
	if got := m.String(); got != "2024-03" {
		t.Errorf("String() = %q, want %q", got, "2024-03")
	}
}

func TestMonth_JSON(t *testing.T) {
	m := NewMonth(2024, time.February)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-02"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2024-02"`)
	}

	var back Month
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != m {
		t.Errorf("round trip = %v, want %v", back, m)
	}

	if err := json.Unmarshal([]byte(`"2024-13"`), &back); err == nil {
		t.Error("Unmarshal() of invalid month = nil error, want error")
	}
	if err := json.Unmarshal([]byte(`42`), &back); err == nil {
		t.Error("Unmarshal() of non-string = nil error, want error")
	}
}
