// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"reflect"
	"testing"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		spec    string
		want    []int
		wantErr bool
	}{
		{spec: "", want: nil},
		{spec: "   ", want: nil},
		{spec: "1", want: []int{1}},
		{spec: "1-3,5,9", want: []int{1, 2, 3, 5, 9}},
		{spec: " 2 - 4 , 7 ", want: []int{2, 3, 4, 7}},
		{spec: "3-3", want: []int{3}},
		{spec: "0", wantErr: true},
		{spec: "-1", wantErr: true},
		{spec: "3-1", wantErr: true},
		{spec: "0-2", wantErr: true},
		{spec: "a-b", wantErr: true},
		{spec: "1,,2", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePageRange(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePageRange(%q): expected error, got %v", tt.spec, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePageRange(%q): unexpected error %v", tt.spec, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePageRange(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}
