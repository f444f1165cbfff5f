package utils

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root folder of this project
	Root = filepath.Join(filepath.Dir(b), "")
)

func SetLogger(fileName string) error {
	file, err := openLogFile(filepath.Join(filepath.Dir(Root), "log", fileName+".txt"))
	if err != nil {
		return err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)

	log.Println("log file created")
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	return logFile, nil
}

func ExportToCsv(name string, records [][]string) error {
	csvPath := filepath.Join(filepath.Dir(Root), "log", name+".csv")
	if err := os.MkdirAll(filepath.Dir(csvPath), os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, value := range records {
		if err = writer.Write(value); err != nil {
			return err
		}
	}

	return err
}
