package constants

// 身份头常量（由上游反向代理 / 身份层注入，应用直接信任）
const (
	HeaderPrincipalID       = "X-MS-CLIENT-PRINCIPAL-ID"
	HeaderIdentityProvider  = "X-MS-CLIENT-PRINCIPAL-IDP"
	DefaultSessionCookie    = "carvedrock_session"
	DefaultSessionMaxAgeSec = 30 * 60
)

// 商品分类常量
const (
	CategoryClothing  = "Clothing"
	CategoryFootwear  = "Footwear"
	CategoryEquipment = "Equipment"
)

// 异步任务常量
const (
	QueueDefault  = "default"
	TaskCartPrune = "cart:prune"
)

// 缓存 key 常量
const (
	CacheKeyProductsAll    = "products:all"
	CacheKeyProductsPrefix = "products:category:"
)
