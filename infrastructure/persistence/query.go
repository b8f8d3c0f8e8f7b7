package persistence

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pc2-api/domain/repositories"
)

// translateError แปลง gorm.ErrRecordNotFound เป็น error กลางของ domain
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrRecordNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applySearch ทุก term ต้อง match อย่างน้อยหนึ่ง column (substring, ไม่สนตัวพิมพ์)
func applySearch(db *gorm.DB, terms []string, columns ...string) *gorm.DB {
	if len(columns) == 0 {
		return db
	}
	for _, term := range terms {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		clauses := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			clauses[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col)
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	return db
}

// applyOrdering ordering จาก client ("-field" = desc) ผ่าน allow-list; field ที่ไม่รู้จักถูกข้าม
// ถ้าไม่มี field ที่ใช้ได้เลยจะใช้ defaults แทน; idColumn ต่อท้ายเสมอเพื่อให้ลำดับคงที่
func applyOrdering(db *gorm.DB, requested []string, allowed map[string]string, idColumn string, defaults ...string) *gorm.DB {
	var orders []string
	for _, field := range requested {
		desc := strings.HasPrefix(field, "-")
		column, ok := allowed[strings.TrimPrefix(field, "-")]
		if !ok {
			continue
		}
		if desc {
			orders = append(orders, column+" DESC")
		} else {
			orders = append(orders, column+" ASC")
		}
	}
	if len(orders) == 0 {
		orders = defaults
	}
	for _, o := range orders {
		db = db.Order(o)
	}
	return db.Order(idColumn + " ASC")
}
