package redis

import "fmt"

const ns = "prostormat:v1"

// KeyVenueCatalog caches the public ranking projection (published,
// top-level venues). Admin previews bypass the cache entirely.
func KeyVenueCatalog() string {
	return ns + ":venues:catalog"
}

func KeyVenueDetail(slug string) string {
	return fmt.Sprintf("%s:venue:%s:detail", ns, slug)
}

func KeyHomepageVenues() string {
	return ns + ":homepage:venues"
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelVenuesChanged() string {
	return ns + ":venues:changed"
}
