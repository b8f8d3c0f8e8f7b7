package repositories

import "errors"

// ErrRecordNotFound ทุก repository คืน error นี้ (wrap) เมื่อไม่พบ record
var ErrRecordNotFound = errors.New("record not found")
