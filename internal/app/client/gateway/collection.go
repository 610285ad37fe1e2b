package gateway

import (
	"context"
	"fmt"
	"net/http"

	"itemdesk/internal/domain/item"
	"itemdesk/internal/domain/user"
)

type listEnvelope[R any] struct {
	Records []R `json:"records"`
	Total   int `json:"total"`
}

type recordEnvelope[R any] struct {
	ID     int `json:"id"`
	Record R   `json:"record"`
}

// Collection выполняет CRUD над коллекцией записей R с полями обновления F и телом
// создания C.
type Collection[R, F, C any] struct {
	client *Client
	path   string
	toggle string
}

func NewCollection[R, F, C any](client *Client, path, toggle string) *Collection[R, F, C] {
	return &Collection[R, F, C]{client: client, path: path, toggle: toggle}
}

func (c *Collection[R, F, C]) List(ctx context.Context) ([]R, error) {
	var env listEnvelope[R]
	if err := c.client.do(ctx, http.MethodGet, c.path, nil, &env); err != nil {
		return nil, err
	}
	if env.Records == nil {
		env.Records = []R{}
	}
	return env.Records, nil
}

func (c *Collection[R, F, C]) Create(ctx context.Context, body C) (R, error) {
	var env recordEnvelope[R]
	err := c.client.do(ctx, http.MethodPost, c.path, body, &env)
	return env.Record, err
}

func (c *Collection[R, F, C]) Update(ctx context.Context, id int, body F) (R, error) {
	var env recordEnvelope[R]
	err := c.client.do(ctx, http.MethodPut, c.recordPath(id), body, &env)
	return env.Record, err
}

func (c *Collection[R, F, C]) Delete(ctx context.Context, id int) error {
	return c.client.do(ctx, http.MethodDelete, c.recordPath(id), nil, nil)
}

// Toggle переключает флаг записи (закрепление, подтверждение).
func (c *Collection[R, F, C]) Toggle(ctx context.Context, id int) (R, error) {
	var env recordEnvelope[R]
	err := c.client.do(ctx, http.MethodPatch, c.recordPath(id)+"/"+c.toggle, nil, &env)
	return env.Record, err
}

func (c *Collection[R, F, C]) recordPath(id int) string {
	return fmt.Sprintf("%s/%d", c.path, id)
}

type Items struct {
	*Collection[item.Item, item.Fields, item.Fields]
}

func NewItems(client *Client) *Items {
	return &Items{NewCollection[item.Item, item.Fields, item.Fields](client, "/api/items", "toggle-pin")}
}

// Reorder задает элементам новые позиции. Запрос идемпотентен.
func (i *Items) Reorder(ctx context.Context, positions []item.Position) error {
	return i.client.do(ctx, http.MethodPatch, i.path+"/reorder", item.ReorderRequest{Items: positions}, nil)
}

type Users = Collection[user.User, user.Fields, user.CreateRequest]

func NewUsers(client *Client) *Users {
	return NewCollection[user.User, user.Fields, user.CreateRequest](client, "/api/users", "toggle-verified")
}
