// Package hands provides the canonical ordering of the 169 heads-up starting
// hand classes, alias resolution for user-supplied hand strings, and the
// rank-to-tier mapping used by the playability rules.
package hands

// rankOrder lists every starting hand class from best (index 0) to worst.
// Non-pair labels follow the table convention of the equity data source
// ("KAs", "9As", "27o"); Normalize accepts the card-swapped spelling too.
var rankOrder = [...]string{
	"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "KAs", "QAs",
	"JAs", "KAo", "QAo", "TAs", "66", "JAo", "QKs", "9As", "TAo", "JKs",
	"8As", "TKs", "5As", "QKo", "9Ao", "JKo", "7As", "TKo", "JQs", "6As",
	"8Ao", "4As", "55", "9Ks", "3As", "6Ao", "8Ks", "TQs", "JQo", "2As",
	"9Ko", "9Qs", "TJs", "7Ks", "5Ao", "4Ao", "7Ao", "6Ks", "44", "TQo",
	"7Ko", "3Ao", "9Qo", "8Qs", "8Ko", "9Js", "TJo", "5Ks", "2Ao", "6Ko",
	"4Ks", "33", "8Js", "7Qs", "9Jo", "5Ko", "3Ks", "8Qo", "9Ts", "5Qs",
	"2Ks", "6Qs", "9To", "7Js", "3Ko", "3Qs", "4Qs", "8Ts", "4Ko", "8Jo",
	"6Qo", "6Js", "2Qs", "7Qo", "89s", "22", "2Ko", "7Ts", "5Js", "8To",
	"4Js", "5Qo", "7Jo", "4Qo", "79s", "6Ts", "3Qo", "7To", "3Js", "6Jo",
	"89o", "5Jo", "2Js", "69s", "5Ts", "2Qo", "78s", "68s", "79o", "4Ts",
	"6To", "4Jo", "3Jo", "59s", "67s", "3Ts", "2Ts", "2Jo", "78o", "58s",
	"5To", "69o", "49s", "57s", "39s", "4To", "48s", "29s", "56s", "3To",
	"68o", "59o", "67o", "47s", "45s", "58o", "2To", "49o", "38s", "57o",
	"39o", "46s", "35s", "28s", "37s", "29o", "56o", "34s", "36s", "48o",
	"47o", "45o", "46o", "27s", "25s", "26s", "24s", "37o", "28o", "38o",
	"36o", "35o", "34o", "23s", "27o", "25o", "26o", "24o", "23o",
}

// Count is the number of canonical starting hand classes.
const Count = len(rankOrder)

// rankIndex maps canonical label to 1-based rank.
var rankIndex = func() map[string]int {
	m := make(map[string]int, Count)
	for i, h := range rankOrder {
		m[h] = i + 1
	}
	return m
}()

// All returns the canonical hands in rank order, best first.
func All() []string {
	out := make([]string, Count)
	copy(out[:], rankOrder[:])
	return out
}

// Rank returns the 1-based rank (1 = best) of a hand string, resolving
// aliases first. ok is false when the hand cannot be recognized.
func Rank(raw string) (rank int, ok bool) {
	norm, ok := Normalize(raw)
	if !ok {
		return 0, false
	}
	rank, ok = rankIndex[norm]
	return rank, ok
}
