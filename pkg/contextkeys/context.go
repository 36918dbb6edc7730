package contextkeys

// Кастомный тип, чтобы избежать коллизий ключей в context
type contextKey string

// DBContextKey - ключ, по которому *gorm.DB хранится в context
const DBContextKey = contextKey("db")
