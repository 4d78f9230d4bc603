package frequency

func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	}
	return b == '_'
}

/*
Tokenize splits text into lowercased runs of word characters (ASCII letters,
digits and underscore). Every other byte, including each byte of a multi-byte
UTF-8 sequence, is a separator.

Separator runs are collapsed. When the text starts or ends with a separator,
an empty token is emitted at that boundary, so " a b." yields "", "a", "b", "".
Empty text yields no tokens.
*/
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	start := 0
	inSeparator := false
	for pos := 0; pos < len(text); pos++ {
		if isWordByte(text[pos]) {
			if inSeparator {
				start = pos
				inSeparator = false
			}
			continue
		}

		if !inSeparator {
			tokens = append(tokens, Normalize(text[start:pos]))
			inSeparator = true
		}
	}

	if inSeparator {
		return append(tokens, "")
	}
	return append(tokens, Normalize(text[start:]))
}
