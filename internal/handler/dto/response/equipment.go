package response

import "equipment-rental/internal/usecase/queries"

const outOfStockSuffix = " (Out of stock)"

type EquipmentResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Class       string `json:"class"`
	Stock       int    `json:"stock"`
	Available   int    `json:"available"`
	OutOfStock  bool   `json:"outOfStock"`
}

func FromEquipmentList(items []queries.EquipmentView) []EquipmentResponse {
	res := make([]EquipmentResponse, 0, len(items))
	if len(items) == 0 {
		return res
	}
	copyInto(&res, &items)
	for i := range res {
		res[i].DisplayName = res[i].Name
		if res[i].OutOfStock {
			res[i].DisplayName += outOfStockSuffix
		}
	}
	return res
}
