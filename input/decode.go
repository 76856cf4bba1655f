package input

// Decode maps a raw read of up to 64 bytes to a single logical KeyCode,
// ported byte-for-byte from original_source/editor.c's get_input. A lone
// ESC byte decodes to KeyEscape; any longer ESC-prefixed sequence that is
// not recognized yields KeyNone, matching the original's "no key"
// behavior rather than surfacing a decode error.
func Decode(keys []byte) KeyCode {
	size := len(keys)
	if size == 0 {
		return KeyNone
	}

	code := KeyCode(keys[0])

	if code == KeyEscape && size > 2 && keys[1] == '[' {
		switch {
		case size == 3:
			switch keys[2] {
			case 'A':
				return KeyUp
			case 'B':
				return KeyDown
			case 'D':
				return KeyLeft
			case 'C':
				return KeyRight
			case 'H':
				return KeyHome
			case 'K':
				return KeyShiftEnd
			}
		case size == 4:
			if keys[2] == '4' && keys[3] == '~' {
				return KeyEnd
			}
			if keys[2] == '2' && keys[3] == 'J' {
				return KeyShiftHome
			}
		case size == 6 && keys[2] == '1' && keys[3] == ';':
			switch keys[4] {
			case '2':
				switch keys[5] {
				case 'A':
					return KeyShiftUp
				case 'B':
					return KeyShiftDown
				case 'D':
					return KeyShiftLeft
				case 'C':
					return KeyShiftRight
				}
			case '5':
				switch keys[5] {
				case 'A':
					return KeyCtrlUp
				case 'B':
					return KeyCtrlDown
				case 'D':
					return KeyCtrlLeft
				case 'C':
					return KeyCtrlRight
				}
			}
		}
		return KeyNone
	}

	if code == KeyEscape && size > 1 {
		return KeyNone
	}

	return code
}
