package domain

// Tipos de requisição e resposta do endpoint runReport da API de dados do GA4
// (v1beta). Apenas os campos usados pelo relatório são mapeados.

type RunReportRequest struct {
	DateRanges      []DateRange       `json:"dateRanges"`
	Metrics         []Metric          `json:"metrics"`
	Dimensions      []Dimension       `json:"dimensions"`
	DimensionFilter *FilterExpression `json:"dimensionFilter,omitempty"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Metric struct {
	Name string `json:"name"`
}

type Dimension struct {
	Name string `json:"name"`
}

type FilterExpression struct {
	Filter *Filter `json:"filter,omitempty"`
}

type Filter struct {
	FieldName    string        `json:"fieldName"`
	StringFilter *StringFilter `json:"stringFilter,omitempty"`
}

type StringFilter struct {
	MatchType string `json:"matchType,omitempty"`
	Value     string `json:"value"`
}

type RunReportResponse struct {
	Rows     []Row `json:"rows"`
	RowCount int   `json:"rowCount"`
}

// Row carrega um valor por métrica solicitada, codificado como texto pela API
type Row struct {
	DimensionValues []DimensionValue `json:"dimensionValues"`
	MetricValues    []MetricValue    `json:"metricValues"`
}

type DimensionValue struct {
	Value string `json:"value"`
}

type MetricValue struct {
	Value string `json:"value"`
}

// APIError é o envelope de erro retornado pelas APIs do Google
type APIError struct {
	Error APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
