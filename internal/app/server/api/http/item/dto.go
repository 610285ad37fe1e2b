package item

import "itemdesk/internal/domain/item"

type idInput struct {
	ID int `path:"id" example:"1" doc:"ID элемента"`
}

type createInput struct {
	Body item.Fields
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID элемента"`
	Body item.Fields
}

type reorderInput struct {
	Body item.ReorderRequest
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Status  string      `json:"status" example:"Ok"`
	Records []item.Item `json:"records"`
	Total   int         `json:"total"`
}

type output struct {
	Body response
}

type response struct {
	Status string    `json:"status" example:"Ok"`
	ID     int       `json:"id"`
	Record item.Item `json:"record"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status" example:"Ok"`
}
