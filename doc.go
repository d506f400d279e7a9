// Package id3text reads, edits and writes the text frames of ID3v2 tags.
//
// Text information frames (TIT2, TPE1, TCON, TXXX and the rest of the
// T*** family) hold one or more strings. Their layout changed between tag
// revisions: ID3v2.4 separates values with NUL terminators, while ID3v2.2
// and 2.3 pack everything into a single string using '/' for performers
// and "(N)" references for genres. id3text decodes both layouts into a plain
// []string and writes whichever layout the target revision expects.
//
// # Quick Start
//
// Reading a frame:
//
//	file, err := id3text.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	artists, err := file.Text("TPE1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(artists)
//
// Editing and saving as ID3v2.3:
//
//	if err := file.SetText("TPE1", "Simon", "Garfunkel"); err != nil {
//		log.Fatal(err)
//	}
//	err = file.Save(id3text.WithVersion(id3text.V23), id3text.WithBackup(".bak"))
//
// # Passthrough
//
// Frames are decoded lazily. A frame nobody looks at is written back
// byte-for-byte when the tag is saved at its original revision, so odd
// encodings and padding produced by other taggers survive a round trip.
//
// # Converting revisions
//
// Saving an ID3v2.4 tag as ID3v2.3 re-encodes every text frame: UTF-8 text
// becomes UTF-16, multiple values are joined, and TDRC is split into TYER,
// TDAT and TIME.
//
// # Lookups
//
// Find and FindUser locate a text frame by identifier (or TXXX description)
// and can create it on a miss:
//
//	album, err := id3text.Find(file.Tag, "TALB", id3text.UTF8, true)
//	if err != nil {
//		log.Fatal(err)
//	}
//	album.SetValues([]string{"Bookends"})
//
// # Error Handling
//
// Problems confined to one frame while reading are reported as Warnings
// on the File. Text frames that fail to decode report *CorruptedFrameError
// when their values are first read. Bad caller input wraps
// ErrInvalidArgument.
package id3text
