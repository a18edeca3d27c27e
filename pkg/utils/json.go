package utils

import (
	"io"
)

// WritePrettyJSON escreve in indentado com dois espaços seguido de nova linha
func WritePrettyJSON(w io.Writer, in any) error {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	buffer = append(buffer, '\n')
	_, err = w.Write(buffer)

	return err
}
