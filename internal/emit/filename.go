package emit

import "strings"

var filenameReplacer = strings.NewReplacer(
	" ", "_",
	"@", "_",
	">", "_",
	".", "_",
)

// DeriveFilename превращает имя декларации в filesystem-safe токен.
// Коллизии не детектируются: два разных имени, схлопнувшихся в один токен,
// перезапишут друг друга на стороне Sink — принятое ограничение.
func DeriveFilename(name string) string {
	return filenameReplacer.Replace(name)
}
