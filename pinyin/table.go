package pinyin

// vowels indexes the columns of toneTable. The last row of the grid, the
// unmarked vowels themselves, is this array.
var vowels = [12]rune{'a', 'e', 'i', 'o', 'u', 'ü', 'A', 'E', 'I', 'O', 'U', 'Ü'}

var toneTable = [4][12]rune{
	{'ā', 'ē', 'ī', 'ō', 'ū', 'ǖ', 'Ā', 'Ē', 'Ī', 'Ō', 'Ū', 'Ǖ'},
	{'á', 'é', 'í', 'ó', 'ú', 'ǘ', 'Á', 'É', 'Í', 'Ó', 'Ú', 'Ǘ'},
	{'ǎ', 'ě', 'ǐ', 'ǒ', 'ǔ', 'ǚ', 'Ǎ', 'Ě', 'Ǐ', 'Ǒ', 'Ǔ', 'Ǚ'},
	{'à', 'è', 'ì', 'ò', 'ù', 'ǜ', 'À', 'È', 'Ì', 'Ò', 'Ù', 'Ǜ'},
}

func vowelIndex(r rune) int {
	switch r {
	case 'v':
		r = 'ü'
	case 'V':
		r = 'Ü'
	}
	for i, v := range vowels {
		if v == r {
			return i
		}
	}
	return -1
}

// Mark returns vowel carrying the diacritic of the given tone. Tones 0 and 5
// are unmarked: ok is true and the vowel comes back as it is. ok is false
// when vowel cannot carry a tone or the tone is out of range.
func Mark(tone int, vowel rune) (marked rune, ok bool) {
	i := vowelIndex(vowel)
	if i < 0 {
		return vowel, false
	}
	switch {
	case tone == 0 || tone == 5:
		return vowels[i], true
	case tone >= 1 && tone <= 4:
		return toneTable[tone-1][i], true
	}
	return vowel, false
}
