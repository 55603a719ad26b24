// Package messages 保存回复模板并负责占位符替换。
//
// 模板使用位置占位符 {0}、{1} ...，与参数顺序一一对应。
package messages

import (
	"fmt"
	"strconv"
	"strings"
)

// Set 一组回复模板
type Set struct {
	Start   string `mapstructure:"start"`   // {0} 名字
	Help    string `mapstructure:"help"`    // 无占位符
	Welcome string `mapstructure:"welcome"` // {0} 名字, {1} 群名称
}

// Default 内置模板
var Default = Set{
	Start: `¡Hola {0}! 👋
Soy un bot de bienvenida para grupos de Telegram.
Añádeme a un grupo y daré la bienvenida a los nuevos miembros.

Usa /help para ver los comandos disponibles.`,

	Help: `Comandos disponibles:

/start - Inicia el bot
/help - Muestra este mensaje de ayuda

Para usar el bot:
1. Añade el bot a un grupo
2. Dale permisos de administrador
3. ¡Listo! El bot dará la bienvenida a los nuevos miembros`,

	Welcome: `¡Bienvenido/a {0} al grupo {1}! 👋

Esperamos que disfrutes tu estancia aquí.
No dudes en presentarte y participar en las conversaciones.`,
}

// Render 按位置替换占位符，没有对应参数的占位符原样保留
func Render(tmpl string, args ...string) string {
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Validate 检查模板非空，且没有引用超出范围的占位符
func (s Set) Validate() error {
	checks := []struct {
		name string
		tmpl string
		max  int
	}{
		{"start", s.Start, 1},
		{"help", s.Help, 0},
		{"welcome", s.Welcome, 2},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.tmpl) == "" {
			return fmt.Errorf("%s: empty template", c.name)
		}
		for i := c.max; i < 10; i++ {
			if strings.Contains(c.tmpl, "{"+strconv.Itoa(i)+"}") {
				return fmt.Errorf("%s: placeholder {%d} has no argument", c.name, i)
			}
		}
	}
	return nil
}
