package shared

// PlatformStatus is the lifecycle state of a tenant store.
type PlatformStatus string

const (
	PlatformActive    PlatformStatus = "active"
	PlatformSuspended PlatformStatus = "suspended"
	PlatformExpired   PlatformStatus = "expired"
)

// SubscriptionStatus tracks the billing state of a platform subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// OrderStatus for landing-page orders.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PixelEventType is an ad-platform conversion milestone.
type PixelEventType string

const (
	PixelViewContent      PixelEventType = "view_content"
	PixelAddToCart        PixelEventType = "add_to_cart"
	PixelInitiateCheckout PixelEventType = "initiate_checkout"
	PixelLead             PixelEventType = "lead"
)

// VariantKind distinguishes the selectable option groups on a product.
type VariantKind string

const (
	VariantColor VariantKind = "color"
	VariantShape VariantKind = "shape"
	VariantSize  VariantKind = "size"
)

// PaymentStatus for subscription payments.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ImageProcessingStatus for the image worker pipeline.
type ImageProcessingStatus string

const (
	ImagePending    ImageProcessingStatus = "pending"
	ImageProcessing ImageProcessingStatus = "processing"
	ImageCompleted  ImageProcessingStatus = "completed"
	ImageFailed     ImageProcessingStatus = "failed"
)
