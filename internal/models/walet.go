package models

import (
	"fmt"
)

// Walet is a login/password pair attached to a client.
// Every business field is nullable; ID is assigned by the store on insert.
type Walet struct {
	ID       *int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDClient *int64  `gorm:"column:id_c_lient" json:"idCLient"`
	Login    *string `gorm:"column:login;size:255" json:"login" validate:"omitempty,max=255"`
	Password *string `gorm:"column:password;size:255" json:"password" validate:"omitempty,max=255"`
}

// TableName pins the table to "walet".
func (Walet) TableName() string {
	return "walet"
}

// Equal reports whether both walets are persisted and share the same id.
// A walet without an id is never equal to anything, itself included.
func (w *Walet) Equal(other *Walet) bool {
	if w == nil || other == nil {
		return false
	}
	if w.ID == nil || other.ID == nil {
		return false
	}
	return *w.ID == *other.ID
}

// Merge copies every non-nil business field of patch onto w.
// The id is never touched.
func (w *Walet) Merge(patch *Walet) {
	if patch == nil {
		return
	}
	if patch.IDClient != nil {
		w.IDClient = patch.IDClient
	}
	if patch.Login != nil {
		w.Login = patch.Login
	}
	if patch.Password != nil {
		w.Password = patch.Password
	}
}

// String renders the walet for logs. The password is masked.
func (w *Walet) String() string {
	if w == nil {
		return "Walet{nil}"
	}
	password := "<nil>"
	if w.Password != nil {
		password = "****"
	}
	return fmt.Sprintf("Walet{id=%s, idCLient=%s, login=%s, password=%s}",
		fmtInt(w.ID), fmtInt(w.IDClient), fmtString(w.Login), password)
}

func fmtInt(v *int64) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtString(v *string) string {
	if v == nil {
		return "<nil>"
	}
	return "'" + *v + "'"
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
