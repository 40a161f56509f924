package main

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"weddingwall/internal/database"
	"weddingwall/internal/domain/contact"
	"weddingwall/internal/domain/upload"
)

// Dev seeding: a handful of uploads in various moderation states plus a
// couple of contact messages. Placeholder bytes are written to the store so
// every row keeps its matching file on disk.
func main() {
	db, err := database.Connect("weddingwall.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("running AutoMigrate...")
	if err := db.AutoMigrate(&upload.Upload{}, &contact.Contact{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("cleaning old data...")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM contacts")

	store := upload.NewStore("./uploads")
	now := time.Now().UTC()

	seeds := []struct {
		uploader string
		original string
		ext      string
		fileType string
		approved bool
		message  string
	}{
		{"Aigerim", "ceremony_01.jpg", "jpg", upload.FileTypeImage, true, "Congratulations!"},
		{"Bekzat", "first_dance.png", "png", upload.FileTypeImage, true, ""},
		{"Dina", "toast.gif", "gif", upload.FileTypeImage, false, "From table 4"},
		{"Marat", "speech.mp4", "mp4", upload.FileTypeVideo, true, "The best man speech"},
	}

	for i, s := range seeds {
		name := upload.NewStoredName(s.ext)
		if _, err := store.Save(name, bytes.NewReader([]byte("placeholder"))); err != nil {
			log.Fatal("store write failed:", err)
		}
		u := upload.Upload{
			UploaderName:     s.uploader,
			Filename:         name,
			OriginalFilename: s.original,
			FileType:         s.fileType,
			FileSize:         int64(len("placeholder")),
			Message:          s.message,
			UploadDate:       now.Add(-time.Duration(i) * time.Hour),
			IsApproved:       s.approved,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("seed upload failed:", err)
		}
		fmt.Printf("upload: %s (%s, approved=%v)\n", s.original, s.fileType, s.approved)
	}

	contacts := []contact.Contact{
		{Name: "Asel", Email: "asel@mail.kz", Message: "Where can I download the photos?", CreatedDate: now},
		{Name: "Nurlan", Email: "nurlan@gmail.com", Message: "Lovely ceremony, thank you!", CreatedDate: now.Add(-2 * time.Hour)},
	}
	for _, c := range contacts {
		if err := db.Create(&c).Error; err != nil {
			log.Fatal("seed contact failed:", err)
		}
		fmt.Printf("contact: %s <%s>\n", c.Name, c.Email)
	}

	log.Println("seed complete")
}
