package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// utf8BOM makes spreadsheet software pick the right encoding.
const utf8BOM = "\ufeff"

func writeCSV(w io.Writer, header []string, records [][]string) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteProductsCSV(w io.Writer, rows []ProductRow) error {
	header := []string{"id", "name", "category", "supplier", "warehouse", "price", "quantity"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Category,
			r.Supplier,
			r.Warehouse,
			r.Price.String(),
			strconv.Itoa(r.Quantity),
		})
	}
	return writeCSV(w, header, records)
}

func WriteOrdersCSV(w io.Writer, rows []OrderRow) error {
	header := []string{"id", "user_email", "status", "total_price", "created_at"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.UserEmail,
			r.Status,
			r.TotalPrice.String(),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return writeCSV(w, header, records)
}

func WriteSuppliersCSV(w io.Writer, rows []SupplierRow) error {
	header := []string{"id", "company_name", "inn", "phone", "email", "address"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.CompanyName,
			r.INN,
			r.Phone,
			r.Email,
			r.Address,
		})
	}
	return writeCSV(w, header, records)
}
