package dataset

import (
	"github.com/katalvlaran/unrelated/pheno"
)

// ReadPhenotypes reads "FID IID Status" rows (or "IID Status") from path.
// Status is kept verbatim; "NA" and empty fields are flagged missing.
func ReadPhenotypes(path string) ([]pheno.Record, error) {
	var records []pheno.Record
	err := eachRow(path, func(line int, fields []string) error {
		switch {
		case len(fields) >= 3:
			records = append(records, pheno.NewRecord(fields[0], fields[1], fields[2]))
		case len(fields) == 2:
			records = append(records, pheno.NewRecord(fields[0], fields[0], fields[1]))
		default:
			return rowError(line, "want FID IID Status, got %d column(s)", len(fields))
		}
		if records[len(records)-1].IID == "" {
			return rowError(line, "empty IID")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
