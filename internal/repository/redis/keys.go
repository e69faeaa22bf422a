package redis

import "fmt"

const ns = "housedraw:v1"

func KeyHouseResults(houseID string) string {
	return fmt.Sprintf("%s:house:%s:results", ns, houseID)
}

func KeyCatalog(lang string) string {
	return fmt.Sprintf("%s:i18n:%s:catalog", ns, lang)
}

func KeyLanguages() string {
	return ns + ":i18n:languages"
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelHousesChanged() string {
	return ns + ":houses:changed"
}
