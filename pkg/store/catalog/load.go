package catalog

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"storefront/pkg/store/domain/model"
)

type catalogJSON struct {
	Products    []model.Product `json:"products"`
	Accessories []model.Product `json:"accessories"`
}

// Load reads a catalog override file. The file replaces the built-in
// catalog wholesale; there is no merging.
func Load(filePath string) (*Catalog, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	var data catalogJSON
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, errors.Wrapf(err, "parse catalog file %s", filePath)
	}
	if len(data.Products) == 0 {
		return nil, errors.Errorf("catalog file %s contains no products", filePath)
	}

	return New(data.Products, data.Accessories), nil
}
