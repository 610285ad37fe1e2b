package types

type contextKey string

// ClientAppKey хранит *client.App в контексте команды.
const ClientAppKey contextKey = "app"
