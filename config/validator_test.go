package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		wantErr string
	}{
		{
			name: "valid",
			form: Form{Sheets: []SheetConfig{{Name: "A"}, {Name: "B"}}},
		},
		{
			name: "unknown directive type is accepted",
			form: Form{Sheets: []SheetConfig{{
				Name:       "A",
				Directives: map[int]DirectiveConfig{0: {Type: "diagonal"}},
			}}},
		},
		{
			name:    "no sheets",
			form:    Form{},
			wantErr: "at least one sheet",
		},
		{
			name:    "missing name",
			form:    Form{Sheets: []SheetConfig{{}}},
			wantErr: "sheet name is required",
		},
		{
			name:    "duplicate name",
			form:    Form{Sheets: []SheetConfig{{Name: "A"}, {Name: "A"}}},
			wantErr: "duplicate sheet name",
		},
		{
			name: "negative index",
			form: Form{Sheets: []SheetConfig{{
				Name:       "A",
				Directives: map[int]DirectiveConfig{-1: {Type: "cell", Address: "A1"}},
			}}},
			wantErr: "negative directive index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.form)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
