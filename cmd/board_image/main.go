package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/google/uuid"
)

// Рисует доску дня на тестовых данных, чтобы проверить картинку без бота и базы
func main() {
	out := flag.String("out", "board.png", "output PNG file")
	at := flag.String("now", "", "current time, RFC3339 (default: today 13:30)")
	flag.Parse()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}

	today := model.DayStart(time.Now().In(loc))
	now := today.Add(13*time.Hour + 30*time.Minute)
	if *at != "" {
		if now, err = time.Parse(time.RFC3339, *at); err != nil {
			fmt.Printf("Invalid -now: %v\n", err)
			os.Exit(1)
		}
		today = model.DayStart(now.In(loc))
	}
	dateKey := model.DateKey(today)

	structures := []model.Structure{
		{
			ID:             "sauna",
			Name:           "Sauna",
			ManagementType: model.ManagementByStructure,
			DefaultStatus:  model.StructureOpen,
			TimeSlots:      hourly(9, 21, 90),
		},
		{
			ID:             "quadra",
			Name:           "Quadra de Tênis",
			ManagementType: model.ManagementByUnit,
			Units:          []string{"Quadra 1", "Quadra 2"},
			DefaultStatus:  model.StructureOpen,
			TimeSlots:      hourly(7, 19, 60),
		},
		{
			ID:             "caiaque",
			Name:           "Caiaque",
			ManagementType: model.ManagementByStructure,
			DefaultStatus:  model.StructureClosed,
			TimeSlots:      hourly(8, 16, 120),
		},
	}

	quadra1 := "Quadra 1"
	bookings := []model.Booking{
		booking(dateKey, "sauna", nil, "10:30", model.BookingStatusConfirmed, "Ana", "Chalé 1"),
		booking(dateKey, "sauna", nil, "15:00", model.BookingStatusPending, "Bruno", "Chalé 4"),
		booking(dateKey, "quadra", &quadra1, "16:00", model.BookingStatusBlocked, "", ""),
		booking(dateKey, "quadra", &quadra1, "17:00", model.BookingStatusConfirmed, "Carla", "Chalé 2"),
	}
	overrides := model.Overrides{"caiaque": model.StructureOpen}

	board := availability.BuildBoard(structures, today, bookings, overrides, nil, now)

	imageData, err := common.GenerateBoardImage(board, today, now)
	if err != nil {
		fmt.Printf("Erro ao gerar imagem: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, imageData, 0644); err != nil {
		fmt.Printf("Erro ao salvar arquivo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Imagem salva em %s\n", *out)
	fmt.Printf("📅 Data: %s\n", today.Format("02.01.2006"))
	fmt.Printf("📊 Slots: %d\n", len(board.Slots))
}

// hourly строит интервалы длиной step минут с from до to часов
func hourly(from, to, step int) []model.TimeSlot {
	var slots []model.TimeSlot
	for m := from * 60; m+step <= to*60; m += step {
		slots = append(slots, model.TimeSlot{
			StartTime: fmt.Sprintf("%02d:%02d", m/60, m%60),
			EndTime:   fmt.Sprintf("%02d:%02d", (m+step)/60, (m+step)%60),
		})
	}
	return slots
}

func booking(date, structureID string, unit *string, start string, status model.BookingStatus, guest, cabin string) model.Booking {
	return model.Booking{
		ID:          uuid.New(),
		StructureID: structureID,
		UnitID:      unit,
		Date:        date,
		StartTime:   start,
		Status:      status,
		GuestName:   guest,
		CabinName:   cabin,
	}
}
