package utils

import (
	"reflect"
	"testing"
)

func TestParsePageNumbers(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"1", []int{1}, false},
		{"1,2,10", []int{1, 2, 10}, false},
		{" 1, 2 , 3 ", []int{1, 2, 3}, false},
		{"1,x,3", nil, true},
		{"1,,3", nil, true},
	}

	for _, tt := range tests {
		got, err := ParsePageNumbers(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePageNumbers(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePageNumbers(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePageNumbers(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
