package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/synthd/synthd/pkg/entity"
)

// writeCSV writes one file per entity kind with a fixed header order. A
// kind with zero records still produces a header-only file so downstream
// tooling sees a stable set of filenames and schemas.
func (e *Exporter) writeCSV(snap *snapshot) ([]string, error) {
	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{string(entity.KindUser) + ".csv", entity.UserFields, userRows(snap.Users)},
		{string(entity.KindProduct) + ".csv", entity.ProductFields, productRows(snap.Products)},
		{string(entity.KindOrder) + ".csv", entity.OrderFields, orderRows(snap.Orders)},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(e.dir, f.name)
		if err := writeCSVFile(path, f.header, f.rows); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

func userRows(users []*entity.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			u.Address,
			u.Phone,
			entity.FormatDate(u.BirthDate),
			strconv.FormatBool(u.IsActive),
			entity.FormatTime(u.CreatedAt),
		})
	}
	return rows
}

func productRows(products []*entity.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Description,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.Category,
			strconv.Itoa(p.StockQuantity),
			entity.FormatTime(p.CreatedAt),
		})
	}
	return rows
}

func orderRows(orders []*entity.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			strconv.FormatInt(o.UserID, 10),
			strconv.FormatInt(o.ProductID, 10),
			strconv.Itoa(o.Quantity),
			strconv.FormatFloat(o.TotalPrice, 'f', 2, 64),
			string(o.Status),
			entity.FormatTime(o.CreatedAt),
		})
	}
	return rows
}
