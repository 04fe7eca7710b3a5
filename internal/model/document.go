package model

// ShopIdentity is the issuing print shop's letterhead data, taken from config.
type ShopIdentity struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// QuotationDocument carries everything the PDF generator needs to render a
// printable quotation.
type QuotationDocument struct {
	Quotation Quotation
	Request   QuoteRequest
	Shop      ShopIdentity
}
