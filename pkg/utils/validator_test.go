package utils

import (
	"errors"
	"testing"
)

type sampleRequest struct {
	Titulo    string  `json:"titulo" validate:"required,notblank,max=10"`
	Nombre    *string `json:"nombre" validate:"omitempty,notblank,max=10"`
	Color     string  `json:"color" validate:"omitempty,hexcolor6"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Prioridad *int    `json:"prioridad" validate:"omitempty,gte=1,lte=4"`
	Estado    *string `json:"estado" validate:"omitempty,oneof=pendiente completada"`
}

func TestValidateStruct(t *testing.T) {
	five := 5
	bad := "archivada"
	spaces := "  \t "
	empty := ""

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr map[string]string
	}{
		{
			name: "valid",
			req:  sampleRequest{Titulo: "Comprar", Color: "#1976D2"},
		},
		{
			name:    "missing title",
			req:     sampleRequest{},
			wantErr: map[string]string{"titulo": "This field is required."},
		},
		{
			name:    "blank title",
			req:     sampleRequest{Titulo: "   "},
			wantErr: map[string]string{"titulo": "This field may not be blank."},
		},
		{
			name:    "blank optional name",
			req:     sampleRequest{Titulo: "x", Nombre: &spaces},
			wantErr: map[string]string{"nombre": "This field may not be blank."},
		},
		{
			name:    "empty optional name",
			req:     sampleRequest{Titulo: "x", Nombre: &empty},
			wantErr: map[string]string{"nombre": "This field may not be blank."},
		},
		{
			name:    "title too long",
			req:     sampleRequest{Titulo: "abcdefghijk"},
			wantErr: map[string]string{"titulo": "Ensure this field has no more than 10 characters."},
		},
		{
			name:    "bad color",
			req:     sampleRequest{Titulo: "x", Color: "blue"},
			wantErr: map[string]string{"color": "Enter a valid hex color (#RRGGBB)."},
		},
		{
			name:    "bad email",
			req:     sampleRequest{Titulo: "x", Email: "nope"},
			wantErr: map[string]string{"email": "Enter a valid email address."},
		},
		{
			name:    "priority out of range",
			req:     sampleRequest{Titulo: "x", Prioridad: &five},
			wantErr: map[string]string{"prioridad": "Ensure this value is less than or equal to 4."},
		},
		{
			name:    "invalid choice",
			req:     sampleRequest{Titulo: "x", Estado: &bad},
			wantErr: map[string]string{"estado": "\"archivada\" is not a valid choice."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected validation error")
			}
			got := GetValidationErrors(err)
			for field, msg := range tt.wantErr {
				if got[field] != msg {
					t.Errorf("field %s: got %q, want %q (all: %v)", field, got[field], msg, got)
				}
			}
		})
	}
}

func TestGetValidationErrorsNonValidator(t *testing.T) {
	got := GetValidationErrors(errors.New("boom"))
	if got["non_field_errors"] != "boom" {
		t.Errorf("expected non_field_errors entry, got %v", got)
	}
}
