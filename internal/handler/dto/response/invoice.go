package response

import "equipment-rental/internal/usecase/queries"

type InvoiceResponse struct {
	OrderID string      `json:"orderId"`
	Invoice InvoiceBody `json:"invoice"`
}

type InvoiceBody struct {
	Title string           `json:"title"`
	Rows  []InvoiceRowBody `json:"rows"`
	Price int              `json:"price"`
	Bonus int              `json:"bonus"`
}

type InvoiceRowBody struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	res := &InvoiceResponse{}
	copyInto(res, v)
	if res.Invoice.Rows == nil {
		res.Invoice.Rows = []InvoiceRowBody{}
	}
	return res
}

func FromInvoiceList(views []queries.InvoiceView) []InvoiceResponse {
	res := make([]InvoiceResponse, 0, len(views))
	for i := range views {
		res = append(res, *FromInvoiceView(&views[i]))
	}
	return res
}
