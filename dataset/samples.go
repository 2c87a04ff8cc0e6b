package dataset

import (
	"strings"
)

// ReadSamples returns the individual IDs listed in path, in file order.
//
// Accepted layouts, no header:
//   - IID                              (one ID per line)
//   - FID IID                          (UKBB sample list)
//   - FID IID PID MID SEX PHENO        (PLINK .fam)
//
// Lines starting with '#' are skipped, so PLINK2 .psam files also load.
func ReadSamples(path string) ([]string, error) {
	var ids []string
	err := eachRow(path, func(line int, fields []string) error {
		if strings.HasPrefix(fields[0], "#") {
			return nil
		}
		id := fields[0]
		if len(fields) > 1 {
			id = fields[1]
		}
		if id == "" {
			return rowError(line, "empty IID")
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
