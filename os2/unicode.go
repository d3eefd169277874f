// seehuhn.de/go/fontinfo - read metadata from OpenType and TrueType fonts
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package os2

// Bit numbers of some commonly used unicode ranges.
const (
	URBasicLatin                UnicodeRangeBit = 0
	URLatin1Sup                 UnicodeRangeBit = 1
	URLatinExtA                 UnicodeRangeBit = 2
	URLatinExtB                 UnicodeRangeBit = 3
	URIPAExtensions             UnicodeRangeBit = 4
	URSpacingModifierLetters    UnicodeRangeBit = 5
	URCombiningDiacriticalMarks UnicodeRangeBit = 6
	URGreek                     UnicodeRangeBit = 7
	URCoptic                    UnicodeRangeBit = 8
	URCyrillic                  UnicodeRangeBit = 9
	URArmenian                  UnicodeRangeBit = 10
	URHebrew                    UnicodeRangeBit = 11
	URVai                       UnicodeRangeBit = 12
	URArabic                    UnicodeRangeBit = 13
	URNko                       UnicodeRangeBit = 14
	URDevanagari                UnicodeRangeBit = 15
	URBengali                   UnicodeRangeBit = 16
	URGurmukhi                  UnicodeRangeBit = 17
	URGujarati                  UnicodeRangeBit = 18
	UROriya                     UnicodeRangeBit = 19
	URTamil                     UnicodeRangeBit = 20
	URTelugu                    UnicodeRangeBit = 21
	URKannada                   UnicodeRangeBit = 22
	URMalayalam                 UnicodeRangeBit = 23
	URThai                      UnicodeRangeBit = 24
	URLao                       UnicodeRangeBit = 25
	URGeorgian                  UnicodeRangeBit = 26
	URBalinese                  UnicodeRangeBit = 27
	URHangulJamo                UnicodeRangeBit = 28
	URLatinExtAdditional        UnicodeRangeBit = 29
	URGreekExt                  UnicodeRangeBit = 30
	URGeneralPunctuation        UnicodeRangeBit = 31
	URSuperscriptsSubscripts    UnicodeRangeBit = 32
	URCurrencySymbols           UnicodeRangeBit = 33
	URCJKSymbols                UnicodeRangeBit = 48
	URHiragana                  UnicodeRangeBit = 49
	URKatakana                  UnicodeRangeBit = 50
	URHangulSyllables           UnicodeRangeBit = 56
	URNonPlane0                 UnicodeRangeBit = 57
	URCJKUnifiedIdeographs      UnicodeRangeBit = 59
	URPrivateUseArea            UnicodeRangeBit = 60
)

// unicodeRangeNames lists the unicode ranges, indexed by bit number.
// Bits 123 to 127 are reserved.
var unicodeRangeNames = [128]string{
	"Basic Latin",                             // 0
	"Latin-1 Supplement",                      // 1
	"Latin Extended-A",                        // 2
	"Latin Extended-B",                        // 3
	"IPA Extensions",                          // 4
	"Spacing Modifier Letters",                // 5
	"Combining Diacritical Marks",             // 6
	"Greek and Coptic",                        // 7
	"Coptic",                                  // 8
	"Cyrillic",                                // 9
	"Armenian",                                // 10
	"Hebrew",                                  // 11
	"Vai",                                     // 12
	"Arabic",                                  // 13
	"NKo",                                     // 14
	"Devanagari",                              // 15
	"Bengali",                                 // 16
	"Gurmukhi",                                // 17
	"Gujarati",                                // 18
	"Oriya",                                   // 19
	"Tamil",                                   // 20
	"Telugu",                                  // 21
	"Kannada",                                 // 22
	"Malayalam",                               // 23
	"Thai",                                    // 24
	"Lao",                                     // 25
	"Georgian",                                // 26
	"Balinese",                                // 27
	"Hangul Jamo",                             // 28
	"Latin Extended Additional",               // 29
	"Greek Extended",                          // 30
	"General Punctuation",                     // 31
	"Superscripts And Subscripts",             // 32
	"Currency Symbols",                        // 33
	"Combining Diacritical Marks For Symbols", // 34
	"Letterlike Symbols",                      // 35
	"Number Forms",                            // 36
	"Arrows",                                  // 37
	"Mathematical Operators",                  // 38
	"Miscellaneous Technical",                 // 39
	"Control Pictures",                        // 40
	"Optical Character Recognition",           // 41
	"Enclosed Alphanumerics",                  // 42
	"Box Drawing",                             // 43
	"Block Elements",                          // 44
	"Geometric Shapes",                        // 45
	"Miscellaneous Symbols",                   // 46
	"Dingbats",                                // 47
	"CJK Symbols And Punctuation",             // 48
	"Hiragana",                                // 49
	"Katakana",                                // 50
	"Bopomofo",                                // 51
	"Hangul Compatibility Jamo",               // 52
	"Phags-pa",                                // 53
	"Enclosed CJK Letters And Months",         // 54
	"CJK Compatibility",                       // 55
	"Hangul Syllables",                        // 56
	"Non-Plane 0",                             // 57
	"Phoenician",                              // 58
	"CJK Unified Ideographs",                  // 59
	"Private Use Area (plane 0)",              // 60
	"CJK Strokes",                             // 61
	"Alphabetic Presentation Forms",           // 62
	"Arabic Presentation Forms-A",             // 63
	"Combining Half Marks",                    // 64
	"Vertical Forms",                          // 65
	"Small Form Variants",                     // 66
	"Arabic Presentation Forms-B",             // 67
	"Halfwidth And Fullwidth Forms",           // 68
	"Specials",                                // 69
	"Tibetan",                                 // 70
	"Syriac",                                  // 71
	"Thaana",                                  // 72
	"Sinhala",                                 // 73
	"Myanmar",                                 // 74
	"Ethiopic",                                // 75
	"Cherokee",                                // 76
	"Unified Canadian Aboriginal Syllabics",   // 77
	"Ogham",                                   // 78
	"Runic",                                   // 79
	"Khmer",                                   // 80
	"Mongolian",                               // 81
	"Braille Patterns",                        // 82
	"Yi Syllables",                            // 83
	"Tagalog",                                 // 84
	"Old Italic",                              // 85
	"Gothic",                                  // 86
	"Deseret",                                 // 87
	"Byzantine Musical Symbols",               // 88
	"Mathematical Alphanumeric Symbols",       // 89
	"Private Use (plane 15)",                  // 90
	"Variation Selectors",                     // 91
	"Tags",                                    // 92
	"Limbu",                                   // 93
	"Tai Le",                                  // 94
	"New Tai Lue",                             // 95
	"Buginese",                                // 96
	"Glagolitic",                              // 97
	"Tifinagh",                                // 98
	"Yijing Hexagram Symbols",                 // 99
	"Syloti Nagri",                            // 100
	"Linear B Syllabary",                      // 101
	"Ancient Greek Numbers",                   // 102
	"Ugaritic",                                // 103
	"Old Persian",                             // 104
	"Shavian",                                 // 105
	"Osmanya",                                 // 106
	"Cypriot Syllabary",                       // 107
	"Kharoshthi",                              // 108
	"Tai Xuan Jing Symbols",                   // 109
	"Cuneiform",                               // 110
	"Counting Rod Numerals",                   // 111
	"Sundanese",                               // 112
	"Lepcha",                                  // 113
	"Ol Chiki",                                // 114
	"Saurashtra",                              // 115
	"Kayah Li",                                // 116
	"Rejang",                                  // 117
	"Cham",                                    // 118
	"Ancient Symbols",                         // 119
	"Phaistos Disc",                           // 120
	"Carian",                                  // 121
	"Domino Tiles",                            // 122
}
