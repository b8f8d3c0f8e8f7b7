package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout รูปแบบวันที่บน wire และใน DB
const DateLayout = "2006-01-02"

// Date วันที่แบบไม่มีเวลา (DATE column)
type Date struct {
	time.Time
}

// NewDate ตัดเวลาทิ้ง เหลือแต่วันที่ (UTC)
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today วันที่ปัจจุบันตาม timezone ของเครื่อง
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parse "YYYY-MM-DD"
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Before เทียบระดับวัน
func (d Date) Before(other Date) bool {
	return d.String() < other.String()
}

// GormDataType ให้ AutoMigrate สร้าง column เป็น date
func (Date) GormDataType() string {
	return "date"
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value เก็บเป็น string เพื่อให้เทียบแบบ lexicographic ได้ทั้ง postgres และ sqlite
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
