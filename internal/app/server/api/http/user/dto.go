package user

import "itemdesk/internal/domain/user"

type idInput struct {
	ID int `path:"id" example:"1" doc:"ID пользователя"`
}

type createInput struct {
	Body user.CreateRequest
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID пользователя"`
	Body user.Fields
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Status  string      `json:"status" example:"Ok"`
	Records []user.User `json:"records"`
	Total   int         `json:"total"`
}

type output struct {
	Body response
}

type response struct {
	Status string    `json:"status" example:"Ok"`
	ID     int       `json:"id"`
	Record user.User `json:"record"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status" example:"Ok"`
}
